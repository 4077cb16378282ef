package database

import "pizzeria/internal/models"

// DefaultMenuItems is the fixed catalog the storefront opens with when the
// database holds no menu yet.
func DefaultMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          1,
			Name:        "Pizza Jarocha Especial",
			Description: "Our traditional recipe with manchego cheese, jalapenos and secret sauce",
			Price:       189,
			Image:       models.DefaultMenuImage,
			Category:    models.CategorySpecial,
			Rating:      4.8,
			Ingredients: []string{"Manchego cheese", "Jalapenos", "Tomato", "Onion"},
		},
		{
			ID:          2,
			Name:        "Pizza Veracruzana",
			Description: "Fresh seafood from the port, shrimp and octopus",
			Price:       249,
			Image:       models.DefaultMenuImage,
			Category:    models.CategorySpecial,
			Rating:      4.9,
			Ingredients: []string{"Shrimp", "Octopus", "Cheese", "Garlic"},
		},
		{
			ID:          3,
			Name:        "Pizza Hawaiana Tropical",
			Description: "Pineapple, ham and melted oaxaca cheese",
			Price:       169,
			Image:       models.DefaultMenuImage,
			Category:    models.CategoryClassic,
			Rating:      4.5,
			Ingredients: []string{"Pineapple", "Ham", "Oaxaca cheese", "Oregano"},
		},
		{
			ID:          4,
			Name:        "Pizza Mexicana",
			Description: "Chorizo, jalapenos, refried beans and avocado",
			Price:       179,
			Image:       models.DefaultMenuImage,
			Category:    models.CategorySpecial,
			Rating:      4.7,
			Ingredients: []string{"Chorizo", "Jalapenos", "Beans", "Avocado"},
		},
		{
			ID:          5,
			Name:        "Pizza Pepperoni",
			Description: "Classic pizza with plenty of pepperoni and cheese",
			Price:       159,
			Image:       models.DefaultMenuImage,
			Category:    models.CategoryClassic,
			Rating:      4.6,
			Ingredients: []string{"Pepperoni", "Mozzarella cheese", "Oregano"},
		},
		{
			ID:          6,
			Name:        "Pizza Vegetariana",
			Description: "Fresh market vegetables, mushrooms and peppers",
			Price:       149,
			Image:       models.DefaultMenuImage,
			Category:    models.CategoryVegetarian,
			Rating:      4.4,
			Ingredients: []string{"Mushrooms", "Peppers", "Onion", "Olives"},
		},
	}
}

func DefaultPromotions() []models.Promotion {
	return []models.Promotion{
		{
			ID:           1,
			Title:        "2-for-1 Tuesdays",
			Description:  "Buy a large pizza and take another of the same size for free",
			Days:         "Tuesday",
			Restrictions: "Valid on selected pizzas",
		},
		{
			ID:          2,
			Title:       "Family Combo",
			Description: "2 large pizzas + 2 liters of soda + an order of wings",
			Price:       "$499",
			Savings:     "Save $150",
		},
		{
			ID:          3,
			Title:       "Happy Hour",
			Description: "20% off medium pizzas",
			Hours:       "5:00 PM - 7:00 PM",
			Days:        "Monday to Friday",
		},
	}
}

func DefaultReviews() []models.Review {
	return []models.Review{
		{
			ID:           1,
			UserName:     "Maria Gonzalez",
			Date:         "2025-11-05",
			Rating:       5,
			Comment:      "The Pizza Jarocha Especial is delicious! The jalapenos give it the perfect touch. Great service and fast delivery.",
			Likes:        12,
			MenuItemName: "Pizza Jarocha Especial",
		},
		{
			ID:           2,
			UserName:     "Carlos Ramirez",
			Date:         "2025-11-04",
			Rating:       5,
			Comment:      "The best pizza in Veracruz without a doubt. The Veracruzana with seafood is incredible, very fresh. Totally recommended.",
			Likes:        8,
			MenuItemName: "Pizza Veracruzana",
		},
		{
			ID:           3,
			UserName:     "Ana Martinez",
			Date:         "2025-11-03",
			Rating:       4,
			Comment:      "Very good pizza, the dough is perfect. I would just like more vegetarian options.",
			Likes:        5,
			MenuItemName: "Pizza Vegetariana",
		},
		{
			ID:           4,
			UserName:     "Roberto Sanchez",
			Date:         "2025-11-02",
			Rating:       5,
			Comment:      "We ordered the Pizza Mexicana for a family gathering and everyone loved it. Authentic flavor and generous portions.",
			Likes:        15,
			MenuItemName: "Pizza Mexicana",
		},
		{
			ID:           5,
			UserName:     "Laura Perez",
			Date:         "2025-11-01",
			Rating:       5,
			Comment:      "Excellent service and delicious pizza. The Hawaiana has the perfect balance of sweet and savory. I will order again!",
			Likes:        6,
			MenuItemName: "Pizza Hawaiana Tropical",
		},
		{
			ID:           6,
			UserName:     "Diego Torres",
			Date:         "2025-10-30",
			Rating:       4,
			Comment:      "Good value for money. The pizza arrived hot and well packed. The manchego cheese gives it a unique flavor.",
			Likes:        9,
			MenuItemName: "Pizza Pepperoni",
		},
	}
}
