package catalog

import "wayfare/models"

func coord(lat, lng float64) *models.Coordinates {
	return &models.Coordinates{Latitude: lat, Longitude: lng}
}

// seedDestinations is the built-in catalog. Keys are lowercase destination
// names; prices are whole currency units per night / per person.
func seedDestinations() map[string]destinationData {
	return map[string]destinationData{
		"italy": {
			Name:   "Italy",
			Center: coord(41.9028, 12.4964), // Rome
			Hotels: []models.HotelCandidate{
				{ID: "hotel-it-01", Name: "Albergo del Corso", PricePerNight: 145, Rating: 4.4, ReviewScore: 8.9, ReviewCount: 2431, Location: coord(41.9009, 12.4833), Amenities: []string{"wifi", "breakfast", "air conditioning"}},
				{ID: "hotel-it-02", Name: "Trastevere Rooms", PricePerNight: 110, Rating: 4.1, ReviewScore: 8.5, ReviewCount: 1322, Location: coord(41.8897, 12.4694), Amenities: []string{"wifi", "rooftop terrace"}},
				{ID: "hotel-it-03", Name: "Palazzo Aurelia", PricePerNight: 320, Rating: 4.8, ReviewScore: 9.4, ReviewCount: 3105, Location: coord(41.9055, 12.4823), Amenities: []string{"wifi", "spa", "pool", "concierge"}},
				{ID: "hotel-it-04", Name: "Ostello Ponte", PricePerNight: 48, Rating: 2.8, ReviewScore: 7.1, ReviewCount: 640, Location: coord(41.8931, 12.5015), Amenities: []string{"wifi", "shared kitchen"}},
				{ID: "hotel-it-05", Name: "Casa Fiorini", PricePerNight: 128, Rating: 3.6, ReviewScore: 8.0, ReviewCount: 412, Amenities: []string{"wifi", "breakfast"}},
			},
			Activities: []models.ActivityCandidate{
				{ID: "act-it-01", Name: "Colosseum & Roman Forum", Type: models.ActivitySightseeing, Cost: 18, TimeSlot: models.SlotMorning, Location: coord(41.8902, 12.4922), Tags: []string{"history", "ancient", "walking"}},
				{ID: "act-it-02", Name: "Vatican Museums & Sistine Chapel", Type: models.ActivitySightseeing, Cost: 20, TimeSlot: models.SlotMorning, Location: coord(41.9065, 12.4536), Tags: []string{"art", "history", "museum"}},
				{ID: "act-it-03", Name: "Pantheon & Piazza Navona Walk", Type: models.ActivitySightseeing, Cost: 0, TimeSlot: models.SlotMorning, Location: coord(41.8986, 12.4769), Tags: []string{"history", "walking", "free"}},
				{ID: "act-it-04", Name: "Galleria Borghese", Type: models.ActivitySightseeing, Cost: 15, TimeSlot: models.SlotMorning, Location: coord(41.9142, 12.4921), Tags: []string{"art", "museum", "gardens"}},
				{ID: "act-it-05", Name: "Trevi Fountain at Dawn", Type: models.ActivitySightseeing, Cost: 0, TimeSlot: models.SlotMorning, Location: coord(41.9009, 12.4833), Tags: []string{"walking", "photography", "free"}},
				{ID: "act-it-06", Name: "Roman Cooking Class", Type: models.ActivityGeneral, Cost: 55, TimeSlot: models.SlotAfternoon, Location: coord(41.8955, 12.4823), Tags: []string{"food", "cooking", "local"}},
				{ID: "act-it-07", Name: "Vespa Tour of the Seven Hills", Type: models.ActivityGeneral, Cost: 40, TimeSlot: models.SlotAfternoon, Location: coord(41.8992, 12.4730), Tags: []string{"adventure", "outdoors"}},
				{ID: "act-it-08", Name: "Testaccio Food Market Tour", Type: models.ActivityGeneral, Cost: 35, TimeSlot: models.SlotAfternoon, Location: coord(41.8758, 12.4747), Tags: []string{"food", "market", "local"}},
				{ID: "act-it-09", Name: "Capitoline Museums", Type: models.ActivityGeneral, Cost: 12, TimeSlot: models.SlotAfternoon, Location: coord(41.8931, 12.4828), Tags: []string{"art", "museum", "history"}},
				{ID: "act-it-10", Name: "Gelato Tasting Walk", Type: models.ActivityGeneral, Cost: 14, TimeSlot: models.SlotAfternoon, Location: coord(41.9000, 12.4790), Tags: []string{"food", "dessert", "walking"}},
				{ID: "act-it-11", Name: "Villa Borghese Bike Hire", Type: models.ActivityGeneral, Cost: 10, TimeSlot: models.SlotFlexible, Location: coord(41.9137, 12.4853), Tags: []string{"outdoors", "cycling", "park"}},
				{ID: "act-it-12", Name: "Opera at Teatro Costanzi", Type: models.ActivityEntertainment, Cost: 45, TimeSlot: models.SlotEvening, Location: coord(41.9005, 12.4959), Tags: []string{"music", "culture"}},
				{ID: "rest-it-01", Name: "Trattoria da Enzo", Type: models.ActivityRestaurant, Cost: 35, TimeSlot: models.SlotEvening, Location: coord(41.8880, 12.4717), Tags: []string{"food", "roman", "pasta"}},
				{ID: "rest-it-02", Name: "Osteria del Sole", Type: models.ActivityRestaurant, Cost: 30, TimeSlot: models.SlotEvening, Location: coord(41.8975, 12.4800), Tags: []string{"food", "wine", "local"}},
				{ID: "rest-it-03", Name: "Pizzeria La Montecarlo", Type: models.ActivityRestaurant, Cost: 22, TimeSlot: models.SlotEvening, Location: coord(41.8990, 12.4715), Tags: []string{"food", "pizza", "casual"}},
				{ID: "rest-it-04", Name: "Il Giardino Segreto", Type: models.ActivityRestaurant, Cost: 48, TimeSlot: models.SlotEvening, Location: coord(41.9040, 12.4880), Tags: []string{"food", "fine dining", "romantic"}},
				{ID: "rest-it-05", Name: "Mercato Centrale Stalls", Type: models.ActivityRestaurant, Cost: 16, TimeSlot: models.SlotFlexible, Location: coord(41.9010, 12.5011), Tags: []string{"food", "street food", "casual"}},
				{ID: "rest-it-06", Name: "Enoteca Ferrara", Type: models.ActivityRestaurant, Cost: 40, TimeSlot: models.SlotEvening, Tags: []string{"food", "wine", "local"}},
			},
		},
		"paris": {
			Name:   "Paris",
			Center: coord(48.8566, 2.3522),
			Hotels: []models.HotelCandidate{
				{ID: "hotel-fr-01", Name: "Hôtel du Marais", PricePerNight: 160, Rating: 4.3, ReviewScore: 8.8, ReviewCount: 1980, Location: coord(48.8570, 2.3580), Amenities: []string{"wifi", "breakfast"}},
				{ID: "hotel-fr-02", Name: "Le Petit Montmartre", PricePerNight: 115, Rating: 3.9, ReviewScore: 8.2, ReviewCount: 870, Location: coord(48.8860, 2.3430), Amenities: []string{"wifi"}},
				{ID: "hotel-fr-03", Name: "Maison Rivoli", PricePerNight: 290, Rating: 4.7, ReviewScore: 9.2, ReviewCount: 2210, Location: coord(48.8606, 2.3376), Amenities: []string{"wifi", "spa", "bar"}},
			},
			Activities: []models.ActivityCandidate{
				{ID: "act-fr-01", Name: "Louvre Museum", Type: models.ActivitySightseeing, Cost: 22, TimeSlot: models.SlotMorning, Location: coord(48.8606, 2.3376), Tags: []string{"art", "museum", "history"}},
				{ID: "act-fr-02", Name: "Eiffel Tower Summit", Type: models.ActivitySightseeing, Cost: 28, TimeSlot: models.SlotMorning, Location: coord(48.8584, 2.2945), Tags: []string{"landmark", "views"}},
				{ID: "act-fr-03", Name: "Seine Riverbank Walk", Type: models.ActivitySightseeing, Cost: 0, TimeSlot: models.SlotMorning, Location: coord(48.8566, 2.3522), Tags: []string{"walking", "free", "photography"}},
				{ID: "act-fr-04", Name: "Musée d'Orsay", Type: models.ActivityGeneral, Cost: 16, TimeSlot: models.SlotAfternoon, Location: coord(48.8600, 2.3266), Tags: []string{"art", "museum"}},
				{ID: "act-fr-05", Name: "Montmartre Art Walk", Type: models.ActivityGeneral, Cost: 12, TimeSlot: models.SlotAfternoon, Location: coord(48.8867, 2.3431), Tags: []string{"art", "walking", "local"}},
				{ID: "act-fr-06", Name: "Seine Evening Cruise", Type: models.ActivityEntertainment, Cost: 18, TimeSlot: models.SlotEvening, Location: coord(48.8584, 2.2966), Tags: []string{"views", "romantic"}},
				{ID: "rest-fr-01", Name: "Bistro Chez Camille", Type: models.ActivityRestaurant, Cost: 38, TimeSlot: models.SlotEvening, Location: coord(48.8552, 2.3610), Tags: []string{"food", "french", "bistro"}},
				{ID: "rest-fr-02", Name: "Crêperie du Canal", Type: models.ActivityRestaurant, Cost: 18, TimeSlot: models.SlotEvening, Location: coord(48.8710, 2.3660), Tags: []string{"food", "casual", "crepes"}},
				{ID: "rest-fr-03", Name: "La Table d'Augustine", Type: models.ActivityRestaurant, Cost: 52, TimeSlot: models.SlotEvening, Location: coord(48.8530, 2.3499), Tags: []string{"food", "fine dining"}},
			},
		},
		"tokyo": {
			Name:   "Tokyo",
			Center: coord(35.6762, 139.6503),
			Hotels: []models.HotelCandidate{
				{ID: "hotel-jp-01", Name: "Shinjuku Garden Hotel", PricePerNight: 135, Rating: 4.2, ReviewScore: 8.7, ReviewCount: 3120, Location: coord(35.6895, 139.6917), Amenities: []string{"wifi", "onsen"}},
				{ID: "hotel-jp-02", Name: "Asakusa Ryokan Hana", PricePerNight: 95, Rating: 4.0, ReviewScore: 8.6, ReviewCount: 760, Location: coord(35.7148, 139.7967), Amenities: []string{"wifi", "tatami rooms"}},
			},
			Activities: []models.ActivityCandidate{
				{ID: "act-jp-01", Name: "Senso-ji Temple", Type: models.ActivitySightseeing, Cost: 0, TimeSlot: models.SlotMorning, Location: coord(35.7148, 139.7967), Tags: []string{"temple", "history", "free"}},
				{ID: "act-jp-02", Name: "Meiji Shrine & Yoyogi Park", Type: models.ActivitySightseeing, Cost: 0, TimeSlot: models.SlotMorning, Location: coord(35.6764, 139.6993), Tags: []string{"shrine", "park", "walking"}},
				{ID: "act-jp-03", Name: "teamLab Planets", Type: models.ActivityGeneral, Cost: 25, TimeSlot: models.SlotAfternoon, Location: coord(35.6494, 139.7898), Tags: []string{"art", "immersive"}},
				{ID: "act-jp-04", Name: "Tsukiji Outer Market Tasting", Type: models.ActivityGeneral, Cost: 30, TimeSlot: models.SlotAfternoon, Location: coord(35.6654, 139.7707), Tags: []string{"food", "market", "local"}},
				{ID: "act-jp-05", Name: "Shibuya Night Walk", Type: models.ActivityEntertainment, Cost: 0, TimeSlot: models.SlotEvening, Location: coord(35.6595, 139.7005), Tags: []string{"nightlife", "free", "walking"}},
				{ID: "rest-jp-01", Name: "Ichiran Ramen Shibuya", Type: models.ActivityRestaurant, Cost: 12, TimeSlot: models.SlotEvening, Location: coord(35.6613, 139.7003), Tags: []string{"food", "ramen", "casual"}},
				{ID: "rest-jp-02", Name: "Sushi Gonpachi", Type: models.ActivityRestaurant, Cost: 45, TimeSlot: models.SlotEvening, Location: coord(35.6627, 139.7296), Tags: []string{"food", "sushi"}},
			},
		},
	}
}
