package repositories

import (
	"fmt"

	"paradise/internal/models"
)

// DefaultCategories is the restaurant's category list.
var DefaultCategories = []models.Category{
	{ID: "breakfast", Name: "Breakfast", Description: "Start your day with authentic flavors"},
	{ID: "lunch", Name: "Lunch", Description: "Hearty midday meals"},
	{ID: "dinner", Name: "Dinner", Description: "Evening favorites"},
}

// DefaultMenuItems is the full static menu.
var DefaultMenuItems = []models.MenuItem{
	// Breakfast
	{ID: "1", Name: "Goat Liver", Description: "Tender goat liver cooked with traditional spices", Price: 20.00, Category: "breakfast", Image: "https://images.unsplash.com/photo-1632778149955-e80f8ceca2e8?w=400"},
	{ID: "2", Name: "Beef Suugar", Description: "Slow-cooked beef in rich aromatic sauce", Price: 20.00, Category: "breakfast", Image: "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?w=400"},
	{ID: "3", Name: "Ful", Description: "Traditional fava bean stew with spices and olive oil", Price: 20.00, Category: "breakfast", Image: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400"},
	{ID: "4", Name: "Chicken Suugar", Description: "Tender chicken simmered in flavorful sauce", Price: 20.00, Category: "breakfast", Image: "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?w=400"},
	{ID: "5", Name: "Beef KK", Description: "Beef prepared in our signature KK style", Price: 22.50, Category: "breakfast", Image: "https://images.unsplash.com/photo-1602030638412-bb8dcc0bc8b0?w=400"},
	{ID: "6", Name: "Chicken KK", Description: "Chicken prepared in our signature KK style", Price: 22.50, Category: "breakfast", Image: "https://images.unsplash.com/photo-1610057099443-fde8c4d50f91?w=400"},
	{ID: "7", Name: "Quesadilla", Description: "Crispy flatbread with savory filling", Price: 15.00, Category: "breakfast", Image: "https://images.unsplash.com/photo-1618040996337-56904b7850b9?w=400"},
	{ID: "8", Name: "Malawax", Description: "Sweet Somali pancake, soft and spongy", Price: 1.30, Category: "breakfast", Image: "https://images.unsplash.com/photo-1528207776546-365bb710ee93?w=400"},
	{ID: "9", Name: "Smoothie", Description: "Fresh blended fruit smoothie", Price: 4.50, Category: "breakfast", Image: "https://images.unsplash.com/photo-1553530666-ba11a7da3888?w=400"},
	{ID: "10", Name: "Mango Juice", Description: "Fresh pressed mango juice", Price: 4.50, Category: "breakfast", Image: "https://images.unsplash.com/photo-1546173159-315724a31696?w=400"},
	{ID: "11", Name: "Avocado Juice", Description: "Creamy fresh avocado blend", Price: 4.50, Category: "breakfast", Image: "https://images.unsplash.com/photo-1623065422902-30a2d299bbe4?w=400"},
	{ID: "12", Name: "Papaya Juice", Description: "Sweet tropical papaya juice", Price: 4.50, Category: "breakfast", Image: "https://images.unsplash.com/photo-1619546952812-520e98064a52?w=400"},
	{ID: "13", Name: "Mix Juice", Description: "Blend of seasonal fresh fruits", Price: 4.50, Category: "breakfast", Image: "https://images.unsplash.com/photo-1622597467836-f3285f2131b8?w=400"},

	// Lunch
	{ID: "14", Name: "Grilled Chicken Steak With Rice", Description: "Juicy grilled chicken served with seasoned rice", Price: 22.50, Category: "lunch", Image: "https://images.unsplash.com/photo-1598515214211-89d3c73ae83b?w=400"},
	{ID: "15", Name: "Curry Rice", Description: "Fragrant curry sauce over fluffy rice", Price: 13.75, Category: "lunch", Image: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400"},
	{ID: "16", Name: "Pasta Saldato", Description: "Pasta in our special house sauce", Price: 13.75, Category: "lunch", Image: "https://images.unsplash.com/photo-1563379926898-05f4575a45d8?w=400"},
	{ID: "17", Name: "Biryani Rice", Description: "Aromatic spiced rice with herbs", Price: 15.00, Category: "lunch", Image: "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=400"},
	{ID: "18", Name: "Beef Kalankal With Rice", Description: "Grilled beef cubes served with rice", Price: 22.50, Category: "lunch", Image: "https://images.unsplash.com/photo-1504973960431-1c467e159aa4?w=400"},
	{ID: "19", Name: "Chicken Kalankal Rice", Description: "Grilled chicken cubes served with rice", Price: 22.50, Category: "lunch", Image: "https://images.unsplash.com/photo-1527477396000-e27163b481c2?w=400"},
	{ID: "20", Name: "Beef Steak With Rice", Description: "Tender beef steak with seasoned rice", Price: 23.75, Category: "lunch", Image: "https://images.unsplash.com/photo-1600891964092-4316c288032e?w=400"},
	{ID: "21", Name: "Falafel Pasta/Rice", Description: "Crispy falafel with your choice of pasta or rice", Price: 29.00, Category: "lunch", Image: "https://images.unsplash.com/photo-1593001874117-c99c800e3eb7?w=400"},
	{ID: "22", Name: "Chicken Legs With Rice", Description: "Roasted chicken legs served with rice", Price: 22.50, Category: "lunch", Image: "https://images.unsplash.com/photo-1598103442097-8b74394b95c6?w=400"},
	{ID: "23", Name: "Salmon Fish", Description: "Fresh salmon fillet, grilled to perfection", Price: 25.00, Category: "lunch", Image: "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?w=400"},
	{ID: "24", Name: "Fish Salad", Description: "Fresh fish over crisp garden salad", Price: 25.00, Category: "lunch", Image: "https://images.unsplash.com/photo-1580476262798-bddd9f4b7369?w=400"},
	{ID: "25", Name: "Traditional Soup", Description: "Hearty traditional soup recipe", Price: 2.00, Category: "lunch", Image: "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=400"},
	{ID: "26", Name: "Family Size", Description: "Large portion perfect for sharing", Price: 51.25, Category: "lunch", Image: "https://images.unsplash.com/photo-1544025162-d76694265947?w=400"},
	{ID: "27", Name: "Veggie Soup", Description: "Fresh vegetable soup", Price: 2.00, Category: "lunch", Image: "https://images.unsplash.com/photo-1476718406336-bb5a9690ee2a?w=400"},
	{ID: "28", Name: "Anjeero Ethiopian", Description: "Ethiopian-style injera platter", Price: 25.50, Category: "lunch", Image: "https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=400"},
	{ID: "29", Name: "Grilled Goat", Description: "Tender goat meat grilled with spices", Price: 24.70, Category: "lunch", Image: "https://images.unsplash.com/photo-1514516345957-556ca7d90a29?w=400"},
	{ID: "30", Name: "Sambuza Chicken", Description: "Crispy pastry filled with spiced chicken", Price: 2.60, Category: "lunch", Image: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400"},
	{ID: "31", Name: "Sambuza Beef", Description: "Crispy pastry filled with spiced beef", Price: 2.60, Category: "lunch", Image: "https://images.unsplash.com/photo-1601050690117-94f5f7fa0ed6?w=400"},
	{ID: "32", Name: "Malawax", Description: "Sweet Somali pancake, soft and spongy", Price: 1.30, Category: "lunch", Image: "https://images.unsplash.com/photo-1528207776546-365bb710ee93?w=400"},
	{ID: "33", Name: "Smoothie", Description: "Fresh blended fruit smoothie", Price: 4.50, Category: "lunch", Image: "https://images.unsplash.com/photo-1553530666-ba11a7da3888?w=400"},
	{ID: "34", Name: "Mango Juice", Description: "Fresh pressed mango juice", Price: 4.50, Category: "lunch", Image: "https://images.unsplash.com/photo-1546173159-315724a31696?w=400"},
	{ID: "35", Name: "Avocado Juice", Description: "Creamy fresh avocado blend", Price: 4.50, Category: "lunch", Image: "https://images.unsplash.com/photo-1623065422902-30a2d299bbe4?w=400"},
	{ID: "36", Name: "Watermelon Juice", Description: "Refreshing watermelon juice", Price: 4.50, Category: "lunch", Image: "https://images.unsplash.com/photo-1534353473418-4cfa6c56fd38?w=400"},
	{ID: "37", Name: "Papaya Juice", Description: "Sweet tropical papaya juice", Price: 4.50, Category: "lunch", Image: "https://images.unsplash.com/photo-1619546952812-520e98064a52?w=400"},
	{ID: "38", Name: "Mix Juice", Description: "Blend of seasonal fresh fruits", Price: 4.50, Category: "lunch", Image: "https://images.unsplash.com/photo-1622597467836-f3285f2131b8?w=400"},

	// Dinner
	{ID: "39", Name: "Beef Shawarma", Description: "Seasoned beef wrapped in fresh bread", Price: 17.50, Category: "dinner", Image: "https://images.unsplash.com/photo-1529006557810-274b9b2fc783?w=400"},
	{ID: "40", Name: "Pasta Special", Description: "Chef's special pasta creation", Price: 15.00, Category: "dinner", Image: "https://images.unsplash.com/photo-1563379926898-05f4575a45d8?w=400"},
	{ID: "41", Name: "Beef Sandwich", Description: "Tender beef in fresh baked bread", Price: 16.25, Category: "dinner", Image: "https://images.unsplash.com/photo-1553909489-cd47e0907980?w=400"},
	{ID: "42", Name: "Mufo Paradise", Description: "Our signature Paradise specialty dish", Price: 23.75, Category: "dinner", Image: "https://images.unsplash.com/photo-1574653853027-5382a3d23a15?w=400"},
	{ID: "43", Name: "Chicken Sandwich", Description: "Grilled chicken in fresh baked bread", Price: 16.25, Category: "dinner", Image: "https://images.unsplash.com/photo-1606755962773-d324e0a13086?w=400"},
	{ID: "44", Name: "Chicken Shawarma", Description: "Seasoned chicken wrapped in fresh bread", Price: 17.50, Category: "dinner", Image: "https://images.unsplash.com/photo-1561651823-34feb02250e4?w=400"},
	{ID: "45", Name: "Beef Suugar", Description: "Slow-cooked beef in rich aromatic sauce", Price: 20.00, Category: "dinner", Image: "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?w=400"},
	{ID: "46", Name: "Chicken Suugar", Description: "Tender chicken simmered in flavorful sauce", Price: 20.00, Category: "dinner", Image: "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?w=400"},
	{ID: "47", Name: "Grilled Goat", Description: "Tender goat meat grilled with spices", Price: 24.70, Category: "dinner", Image: "https://images.unsplash.com/photo-1514516345957-556ca7d90a29?w=400"},
	{ID: "48", Name: "Malawax", Description: "Sweet Somali pancake, soft and spongy", Price: 1.30, Category: "dinner", Image: "https://images.unsplash.com/photo-1528207776546-365bb710ee93?w=400"},
	{ID: "49", Name: "Mango Juice", Description: "Fresh pressed mango juice", Price: 4.50, Category: "dinner", Image: "https://images.unsplash.com/photo-1546173159-315724a31696?w=400"},
	{ID: "50", Name: "Avocado Juice", Description: "Creamy fresh avocado blend", Price: 4.50, Category: "dinner", Image: "https://images.unsplash.com/photo-1623065422902-30a2d299bbe4?w=400"},
	{ID: "51", Name: "Papaya Juice", Description: "Sweet tropical papaya juice", Price: 4.50, Category: "dinner", Image: "https://images.unsplash.com/photo-1619546952812-520e98064a52?w=400"},
	{ID: "52", Name: "Mix Juice", Description: "Blend of seasonal fresh fruits", Price: 4.50, Category: "dinner", Image: "https://images.unsplash.com/photo-1622597467836-f3285f2131b8?w=400"},
}

// SeedDefaultCatalog loads the static catalog into the repository.
func SeedDefaultCatalog(repo *InMemoryMenuRepository) error {
	for _, category := range DefaultCategories {
		if err := repo.AddCategory(category); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", category.ID, err)
		}
	}
	for _, item := range DefaultMenuItems {
		if err := repo.AddItem(item); err != nil {
			return fmt.Errorf("failed to seed menu item %s: %w", item.ID, err)
		}
	}
	return nil
}
