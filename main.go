package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfare/budget"
	"wayfare/catalog"
	"wayfare/chat"
	"wayfare/db"
	"wayfare/dialogue"
	"wayfare/ratelim"
	"wayfare/rdx"
	"wayfare/routes"
	"wayfare/session"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// XSS, content sniffing, framing
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		// HSTS (must be on HTTPS)
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		// Referrer and permissions
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s took %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// newCatalog uses Mongo when MONGO_URL is set, otherwise the built-in seed
// data so the planner works out of the box.
func newCatalog() catalog.Store {
	if mongoDB := db.Connect(); mongoDB != nil {
		return catalog.NewMongoStore(mongoDB)
	}
	log.Println("MONGO_URL not set; using the in-memory catalog")
	return catalog.NewMemoryStore()
}

// newSink publishes itinerary snapshots to Redis when available.
func newSink() session.SnapshotSink {
	if client := rdx.Connect(); client != nil {
		return session.NewRedisSink(client)
	}
	log.Println("REDIS_URL not set; itinerary snapshots stay in memory only")
	return session.NopSink{}
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	cat := newCatalog()
	engine := dialogue.NewEngine(cat, session.NewMemoryStore(), newSink(), budget.PolicyFromEnv())

	rateLimiter := ratelim.NewRateLimiter()

	hub := chat.NewHub()
	go hub.Run()

	router := httprouter.New()
	routes.AddUtilityRoutes(router)
	routes.AddCatalogRoutes(router, rateLimiter, cat)
	routes.AddChatRoutes(router, rateLimiter, engine, hub)

	// apply middleware: CORS, security headers, logging, then the router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("Shutting down conversation hub...")
		hub.Stop()
	})

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
