package storage

import (
	"github.com/lib/pq"

	"wanderlust-travel/internal/models"
)

// Sample catalogue data for the memory backend. The postgres backend seeds
// the same rows through its migrations.
var seedTours = []models.Tour{
	{
		ID:          1,
		Name:        "Zanzibar Spice & Culture Tour",
		Description: "Explore Stone Town and aromatic spice plantations",
		Duration:    "7 Days",
		Price:       "1899",
		Rating:      "4.8",
		Image:       "https://images.unsplash.com/photo-1544551763-46a013bb70d5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Destination: "Zanzibar",
	},
	{
		ID:          2,
		Name:        "Kenyan Coast Beach Safari",
		Description: "Diani Beach relaxation and Watamu marine adventures",
		Duration:    "10 Days",
		Price:       "2299",
		Rating:      "4.9",
		Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Destination: "Kenya",
	},
	{
		ID:          3,
		Name:        "Tanzania Coastal Discovery",
		Description: "Dar es Salaam city tour and pristine coastal exploration",
		Duration:    "8 Days",
		Price:       "1699",
		Rating:      "4.7",
		Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Destination: "Tanzania",
	},
	{
		ID:          4,
		Name:        "Lamu Island Heritage Experience",
		Description: "UNESCO World Heritage site and dhow sailing adventures",
		Duration:    "5 Days",
		Price:       "1299",
		Rating:      "4.6",
		Image:       "https://images.unsplash.com/photo-1518548419970-58e3b4079ab2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Destination: "Kenya",
	},
}

var seedHotels = []models.Hotel{
	{
		ID:            1,
		Name:          "Zanzibar Serena Hotel",
		Description:   "Luxury beachfront resort in Stone Town with traditional architecture",
		PricePerNight: "289",
		Rating:        "4.9",
		Image:         "https://images.unsplash.com/photo-1571896349842-33c89424de2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Location:      "Stone Town, Zanzibar",
		Amenities:     pq.StringArray{"Ocean View", "Spa", "Pool", "Spice Restaurant"},
	},
	{
		ID:            2,
		Name:          "Diani Reef Beach Resort",
		Description:   "All-inclusive paradise on Kenya's pristine Diani Beach",
		PricePerNight: "219",
		Rating:        "4.8",
		Image:         "https://images.unsplash.com/photo-1566073771259-6a8506099945?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Location:      "Diani Beach, Kenya",
		Amenities:     pq.StringArray{"Beachfront", "All-Inclusive", "Water Sports", "Kids Club"},
	},
	{
		ID:            3,
		Name:          "Watamu Turtle Bay Beach Resort",
		Description:   "Eco-friendly resort near marine national park",
		PricePerNight: "189",
		Rating:        "4.6",
		Image:         "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Location:      "Watamu, Kenya",
		Amenities:     pq.StringArray{"Marine Park", "Eco-Friendly", "Snorkeling", "Spa"},
	},
	{
		ID:            4,
		Name:          "The Slipway Hotel",
		Description:   "Contemporary waterfront hotel with harbor views",
		PricePerNight: "159",
		Rating:        "4.7",
		Image:         "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Location:      "Dar es Salaam, Tanzania",
		Amenities:     pq.StringArray{"Harbor View", "Modern Design", "Marina", "Business Center"},
	},
	{
		ID:            5,
		Name:          "Lamu House Hotel",
		Description:   "Historic Swahili mansion with authentic architecture",
		PricePerNight: "179",
		Rating:        "4.5",
		Image:         "https://images.unsplash.com/photo-1564501049412-61c2a3083791?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Location:      "Lamu Island, Kenya",
		Amenities:     pq.StringArray{"Historic Building", "Swahili Culture", "Rooftop Terrace", "Traditional Cuisine"},
	},
	{
		ID:            6,
		Name:          "Nungwi Dreams Hotel",
		Description:   "Boutique beachfront hotel with sunset dhow views",
		PricePerNight: "249",
		Rating:        "4.8",
		Image:         "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Location:      "Nungwi, Zanzibar",
		Amenities:     pq.StringArray{"Beach Access", "Dhow Trips", "Sunset Views", "Beach Bar"},
	},
}
