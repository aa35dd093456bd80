package refdata

import (
	"github.com/xenking/starmart-datagen/internal/domain/product"
	"github.com/xenking/starmart-datagen/internal/domain/staff"
	"github.com/xenking/starmart-datagen/internal/domain/store"
)

type site struct {
	region       string
	neighborhood string
	population   int
	size         store.Size
	parking      store.Parking
	tier         store.Tier
}

// sites is the store roster in id order.
var sites = []site{
	{"Far North Side", "Rogers Park", 55628, store.SizeMedium, store.ParkingLimited, store.TierMedium},
	{"Far North Side", "Uptown", 57182, store.SizeMedium, store.ParkingVeryLimited, store.TierHigh},
	{"Far North Side", "Edgewater", 56296, store.SizeSmall, store.ParkingLimited, store.TierMedium},
	{"North Side", "Lake View", 103050, store.SizeLarge, store.ParkingModerate, store.TierHigh},
	{"North Side", "Lincoln Park", 70492, store.SizeLarge, store.ParkingAdequate, store.TierHigh},
	{"North Side", "North Center", 35114, store.SizeSmall, store.ParkingModerate, store.TierLow},
	{"Northwest Side", "Portage Park", 63020, store.SizeMedium, store.ParkingSpacious, store.TierMedium},
	{"Northwest Side", "Belmont Cragin", 78116, store.SizeLarge, store.ParkingAdequate, store.TierMedium},
	{"West Side", "Humboldt Park", 54165, store.SizeMedium, store.ParkingModerate, store.TierLow},
	{"West Side", "West Town", 87781, store.SizeLarge, store.ParkingLimited, store.TierHigh},
	{"West Side", "Austin", 96557, store.SizeLarge, store.ParkingSpacious, store.TierMedium},
	{"Central", "Near North Side", 105481, store.SizeLarge, store.ParkingVeryLimited, store.TierHigh},
	{"Central", "Loop", 42298, store.SizeMedium, store.ParkingVeryLimited, store.TierHigh},
	{"Central", "Near South Side", 28795, store.SizeSmall, store.ParkingLimited, store.TierMedium},
	{"South Side", "Hyde Park", 29456, store.SizeSmall, store.ParkingModerate, store.TierMedium},
	{"South Side", "Bridgeport", 33702, store.SizeSmall, store.ParkingAdequate, store.TierLow},
	{"Southwest Side", "Gage Park", 39540, store.SizeMedium, store.ParkingSpacious, store.TierLow},
	{"Southwest Side", "Chicago Lawn", 55931, store.SizeMedium, store.ParkingAdequate, store.TierMedium},
	{"Far Southeast Side", "South Chicago", 27300, store.SizeSmall, store.ParkingSpacious, store.TierLow},
	{"Far Southwest Side", "Beverly", 20027, store.SizeMedium, store.ParkingSpacious, store.TierLow},
}

type item struct {
	name   string
	cost   float64
	rating float64
}

type subcategory struct {
	name  string
	items []item
}

type category struct {
	name string
	subs []subcategory
}

// catalog lists every category with its subcategories and base products.
var catalog = []category{
	{product.CategoryBakery, []subcategory{
		{"Bread", []item{{"Sourdough Loaf", 2.10, 4.4}, {"Whole Wheat Bread", 1.60, 4.1}, {"Rye Bread", 1.90, 3.8}, {"Baguette", 1.20, 4.2}, {"Multigrain Bread", 2.00, 4.0}}},
		{"Pastries", []item{{"Croissant", 0.90, 4.3}, {"Danish", 1.10, 3.9}, {"Cinnamon Roll", 1.20, 4.5}, {"Muffin", 0.80, 4.0}, {"Scone", 0.95, 3.7}}},
		{"Cakes", []item{{"Chocolate Cake", 9.50, 4.6}, {"Cheesecake", 11.00, 4.5}, {"Carrot Cake", 8.75, 4.2}, {"Pound Cake", 6.20, 3.9}, {"Red Velvet Cake", 10.25, 4.4}}},
	}},
	{product.CategoryBeverages, []subcategory{
		{"Water", []item{{"Spring Water 24pk", 3.10, 4.2}, {"Sparkling Water", 0.70, 4.0}, {"Mineral Water", 0.95, 3.9}, {"Alkaline Water", 1.25, 3.6}, {"Flavored Water", 0.85, 3.8}}},
		{"Soft Drinks", []item{{"Cola 12pk", 4.20, 4.3}, {"Lemon Lime Soda", 1.10, 4.0}, {"Root Beer", 1.05, 4.1}, {"Ginger Ale", 1.00, 3.9}, {"Orange Soda", 0.95, 3.7}}},
		{"Juices", []item{{"Orange Juice", 2.60, 4.4}, {"Apple Juice", 2.10, 4.1}, {"Cranberry Juice", 2.40, 3.9}, {"Grape Juice", 2.30, 3.8}, {"Mango Nectar", 1.80, 4.0}}},
	}},
	{product.CategoryBreakfast, []subcategory{
		{"Cereal", []item{{"Corn Flakes", 2.40, 4.1}, {"Granola", 3.60, 4.3}, {"Oat Rings", 2.80, 4.2}, {"Bran Flakes", 2.50, 3.7}, {"Frosted Wheat", 2.90, 4.0}}},
		{"Oatmeal", []item{{"Rolled Oats", 2.20, 4.4}, {"Steel Cut Oats", 3.10, 4.2}, {"Instant Oatmeal", 2.60, 3.9}, {"Maple Oatmeal Cups", 1.40, 3.8}, {"Overnight Oats", 2.90, 4.0}}},
		{"Spreads", []item{{"Peanut Butter", 2.70, 4.5}, {"Strawberry Jam", 2.30, 4.2}, {"Honey", 4.10, 4.6}, {"Hazelnut Spread", 3.40, 4.4}, {"Maple Syrup", 5.80, 4.5}}},
	}},
	{product.CategoryCandy, []subcategory{
		{"Chocolate", []item{{"Milk Chocolate Bar", 0.90, 4.4}, {"Dark Chocolate Bar", 1.30, 4.3}, {"Peanut Butter Cups", 1.00, 4.6}, {"Chocolate Truffles", 4.50, 4.2}, {"Caramel Bar", 0.85, 4.0}}},
		{"Gummies", []item{{"Gummy Bears", 1.20, 4.2}, {"Sour Worms", 1.25, 4.1}, {"Fruit Snacks", 2.10, 3.9}, {"Gummy Rings", 1.15, 3.8}, {"Licorice Twists", 1.40, 3.7}}},
		{"Hard Candies", []item{{"Peppermints", 1.60, 3.9}, {"Lollipops", 2.20, 4.0}, {"Butterscotch", 1.80, 3.8}, {"Cinnamon Drops", 1.50, 3.6}, {"Lemon Drops", 1.45, 3.7}}},
	}},
	{product.CategoryCleaning, []subcategory{
		{"Detergents", []item{{"Liquid Laundry Detergent", 7.80, 4.4}, {"Laundry Pods", 9.20, 4.3}, {"Dish Soap", 2.10, 4.2}, {"Dishwasher Tablets", 6.70, 4.1}, {"Fabric Softener", 4.30, 4.0}}},
		{"Surface Cleaners", []item{{"All-Purpose Spray", 2.90, 4.1}, {"Glass Cleaner", 2.40, 4.0}, {"Disinfecting Wipes", 3.80, 4.5}, {"Bathroom Cleaner", 3.10, 3.9}, {"Floor Cleaner", 4.20, 3.8}}},
		{"Cleaning Tools", []item{{"Sponges 6pk", 2.20, 3.9}, {"Microfiber Cloths", 4.10, 4.3}, {"Mop Refill", 5.60, 3.7}, {"Scrub Brush", 2.70, 3.8}, {"Rubber Gloves", 2.30, 4.0}}},
	}},
	{product.CategoryGifts, []subcategory{
		{"Greeting Cards", []item{{"Birthday Card", 1.80, 4.0}, {"Holiday Card Pack", 5.40, 4.1}, {"Thank You Cards", 3.90, 3.9}, {"Anniversary Card", 2.10, 4.0}, {"Blank Notecards", 3.20, 3.7}}},
		{"Gift Sets", []item{{"Chocolate Gift Box", 12.50, 4.5}, {"Candle Gift Set", 14.00, 4.2}, {"Bath Gift Set", 16.00, 4.3}, {"Tea Sampler", 11.20, 4.1}, {"Snack Basket", 18.50, 4.0}}},
		{"Flowers", []item{{"Rose Bouquet", 11.00, 4.4}, {"Mixed Bouquet", 8.50, 4.2}, {"Potted Orchid", 13.50, 4.5}, {"Tulip Bunch", 6.80, 4.1}, {"Sunflower Bunch", 6.20, 4.0}}},
	}},
	{product.CategoryHousehold, []subcategory{
		{"Kitchenware", []item{{"Aluminum Foil", 3.40, 4.3}, {"Food Storage Containers", 6.90, 4.1}, {"Zip Bags", 2.80, 4.2}, {"Plastic Wrap", 2.50, 3.9}, {"Baking Sheets", 7.20, 4.0}}},
		{"Batteries", []item{{"AA Batteries 8pk", 6.10, 4.5}, {"AAA Batteries 8pk", 6.10, 4.4}, {"9V Battery", 3.20, 4.1}, {"C Batteries", 4.90, 4.0}, {"Coin Cell Battery", 2.70, 3.9}}},
		{"Light Bulbs", []item{{"LED Bulb 60W", 2.60, 4.4}, {"LED Bulb 4pk", 8.40, 4.3}, {"Night Light", 3.10, 4.0}, {"Flood Light Bulb", 5.20, 3.9}, {"Candelabra Bulb", 2.90, 3.8}}},
	}},
	{product.CategoryGrocery, []subcategory{
		{"Fresh Produce", []item{{"Bananas", 0.35, 4.5}, {"Apples", 0.60, 4.3}, {"Tomatoes", 0.80, 4.0}, {"Lettuce", 1.10, 3.9}, {"Potatoes 5lb", 2.40, 4.2}}},
		{"Dairy", []item{{"Whole Milk", 2.20, 4.5}, {"Cheddar Cheese", 3.10, 4.4}, {"Greek Yogurt", 0.95, 4.3}, {"Butter", 2.80, 4.4}, {"Large Eggs", 2.60, 4.2}}},
		{"Frozen Foods", []item{{"Frozen Pizza", 3.90, 4.0}, {"Frozen Vegetables", 1.60, 4.1}, {"Ice Cream", 3.20, 4.5}, {"Frozen Waffles", 2.10, 3.9}, {"Frozen Dumplings", 4.40, 4.2}}},
	}},
	{product.CategoryMeatSeafood, []subcategory{
		{"Poultry", []item{{"Chicken Breast", 5.80, 4.3}, {"Chicken Thighs", 4.20, 4.2}, {"Whole Chicken", 7.10, 4.1}, {"Ground Turkey", 4.90, 4.0}, {"Chicken Wings", 6.30, 4.4}}},
		{"Beef & Pork", []item{{"Ground Beef", 5.40, 4.3}, {"Ribeye Steak", 12.80, 4.6}, {"Pork Chops", 5.90, 4.1}, {"Bacon", 4.70, 4.5}, {"Italian Sausage", 4.30, 4.2}}},
		{"Seafood", []item{{"Atlantic Salmon", 9.80, 4.4}, {"Shrimp", 8.60, 4.3}, {"Cod Fillet", 7.90, 4.1}, {"Tilapia", 5.20, 3.9}, {"Canned Tuna", 1.10, 4.0}}},
	}},
	{product.CategoryPantry, []subcategory{
		{"Pasta & Rice", []item{{"Spaghetti", 1.10, 4.3}, {"Penne", 1.10, 4.2}, {"Long Grain Rice", 2.40, 4.4}, {"Brown Rice", 2.70, 4.1}, {"Egg Noodles", 1.60, 4.0}}},
		{"Canned Goods", []item{{"Black Beans", 0.80, 4.2}, {"Diced Tomatoes", 0.85, 4.3}, {"Chicken Noodle Soup", 1.30, 4.1}, {"Sweet Corn", 0.75, 4.0}, {"Chickpeas", 0.85, 4.1}}},
		{"Condiments", []item{{"Ketchup", 1.90, 4.4}, {"Yellow Mustard", 1.20, 4.2}, {"Mayonnaise", 2.80, 4.3}, {"Olive Oil", 6.40, 4.5}, {"Soy Sauce", 1.70, 4.2}}},
	}},
	{product.CategoryPaperPlastic, []subcategory{
		{"Paper Towels", []item{{"Paper Towels 6pk", 6.80, 4.4}, {"Select-a-Size Towels", 7.40, 4.3}, {"Shop Towels", 4.20, 4.0}, {"Napkins 250ct", 2.60, 4.1}, {"Paper Towels 2pk", 2.70, 3.9}}},
		{"Toilet Paper", []item{{"Toilet Paper 12pk", 7.90, 4.5}, {"Toilet Paper 24pk", 14.20, 4.4}, {"Ultra Soft 6pk", 5.10, 4.3}, {"Septic Safe 12pk", 7.20, 4.0}, {"Recycled 12pk", 6.40, 3.8}}},
		{"Disposable Tableware", []item{{"Paper Plates", 3.10, 4.1}, {"Plastic Cups", 2.40, 4.0}, {"Plastic Cutlery", 2.20, 3.8}, {"Foam Bowls", 2.60, 3.7}, {"Party Tablecloth", 1.90, 3.9}}},
	}},
	{product.CategorySnacks, []subcategory{
		{"Chips", []item{{"Potato Chips", 2.30, 4.4}, {"Tortilla Chips", 2.10, 4.3}, {"Kettle Chips", 2.70, 4.4}, {"Cheese Puffs", 2.00, 4.1}, {"Pita Chips", 2.50, 4.0}}},
		{"Cookies", []item{{"Chocolate Chip Cookies", 2.60, 4.5}, {"Sandwich Cookies", 2.40, 4.4}, {"Oatmeal Cookies", 2.50, 4.0}, {"Shortbread", 2.90, 4.2}, {"Ginger Snaps", 2.20, 3.8}}},
		{"Nuts & Trail Mix", []item{{"Roasted Almonds", 4.80, 4.4}, {"Salted Peanuts", 2.60, 4.2}, {"Trail Mix", 4.10, 4.3}, {"Cashews", 6.20, 4.5}, {"Pistachios", 5.90, 4.4}}},
	}},
	{product.CategoryWinterSeasonal, []subcategory{
		{"Hot Beverages", []item{{"Hot Cocoa Mix", 2.90, 4.4}, {"Peppermint Tea", 2.70, 4.1}, {"Apple Cider Mix", 3.10, 4.0}, {"Eggnog", 3.40, 4.2}, {"Mulling Spices", 3.80, 3.8}}},
		{"Winter Essentials", []item{{"Hand Warmers", 3.20, 4.2}, {"Ice Melt", 6.40, 4.1}, {"Lip Balm", 1.40, 4.3}, {"Wool Socks", 5.20, 4.0}, {"Ice Scraper", 3.60, 3.9}}},
	}},
	{product.CategorySpringSeasonal, []subcategory{
		{"Gardening", []item{{"Potting Soil", 5.80, 4.2}, {"Flower Seeds", 1.60, 4.0}, {"Vegetable Seeds", 1.70, 4.1}, {"Garden Gloves", 3.90, 3.9}, {"Plant Food", 4.60, 4.2}}},
		{"Spring Cleaning", []item{{"Storage Bins", 7.20, 4.1}, {"Lint Rollers", 2.80, 4.0}, {"Closet Organizer", 9.40, 3.8}, {"Dusters", 3.40, 3.9}, {"Trash Bags 40ct", 6.10, 4.3}}},
	}},
	{product.CategorySummerSeasonal, []subcategory{
		{"Grilling", []item{{"Charcoal", 8.40, 4.3}, {"Lighter Fluid", 3.90, 4.0}, {"BBQ Sauce", 2.30, 4.4}, {"Grill Brush", 5.60, 3.9}, {"Skewers", 2.10, 3.8}}},
		{"Outdoor", []item{{"Sunscreen SPF 50", 6.80, 4.5}, {"Bug Spray", 5.20, 4.1}, {"Beach Towel", 8.90, 4.0}, {"Cooler Bag", 11.40, 4.2}, {"Water Balloons", 2.40, 3.9}}},
	}},
	{product.CategoryFallSeasonal, []subcategory{
		{"Autumn Treats", []item{{"Pumpkin Pie", 5.80, 4.5}, {"Apple Cider", 3.40, 4.4}, {"Candy Corn", 1.80, 3.7}, {"Pumpkin Spice Coffee", 6.20, 4.3}, {"Caramel Apples", 3.60, 4.1}}},
		{"Halloween Decor", []item{{"Carving Pumpkin", 3.50, 4.2}, {"Costume Kit", 12.40, 4.0}, {"Spider Webs", 2.20, 3.8}, {"Jack-o-Lantern Lights", 7.80, 4.1}, {"Treat Bags", 2.10, 3.9}}},
	}},
	{product.CategoryChilledSnacks, []subcategory{
		{"Cheese & Crackers", []item{{"Cheese Snack Pack", 2.90, 4.3}, {"String Cheese", 3.40, 4.4}, {"Cracker Stacks", 3.10, 4.1}, {"Cheese Cubes", 3.60, 4.0}, {"Brie Bites", 4.80, 4.2}}},
		{"Dips & Spreads", []item{{"Hummus", 2.80, 4.4}, {"Guacamole", 3.60, 4.3}, {"Salsa", 2.40, 4.2}, {"Spinach Dip", 3.20, 4.0}, {"Tzatziki", 3.10, 4.1}}},
		{"Ready Snacks", []item{{"Veggie Tray", 5.90, 4.1}, {"Fruit Cup", 1.60, 4.2}, {"Protein Box", 4.40, 4.0}, {"Pudding Cups", 2.20, 4.3}, {"Jello Cups", 1.90, 3.9}}},
	}},
}

type variant struct {
	name       string
	multiplier float64
}

// variants lists the size/flavor variants of a subcategory's products.
// Subcategories without an entry have a single "N/A" variant.
var variants = map[string][]variant{
	"Water":         {{"Regular", 1}, {"Large", 1.6}},
	"Soft Drinks":   {{"Regular", 1}, {"Diet", 1}, {"Zero Sugar", 1.05}},
	"Juices":        {{"32oz", 1}, {"64oz", 1.75}},
	"Chips":         {{"Regular", 1}, {"Family Size", 1.8}},
	"Dairy":         {{"Regular", 1}, {"Organic", 1.45}},
	"Detergents":    {{"Standard", 1}, {"Free & Clear", 1.1}},
	"Toilet Paper":  {{"Standard", 1}, {"Premium", 1.3}},
	"Chocolate":     {{"Regular", 1}, {"King Size", 1.5}},
	"Fresh Produce": {{"Conventional", 1}, {"Organic", 1.6}},
}

// shelfLife is keyed by subcategory.
var shelfLife = map[string]string{
	"Bread":                "5 days",
	"Pastries":             "3 days",
	"Cakes":                "1 weeks",
	"Water":                "2 years",
	"Soft Drinks":          "9 months",
	"Juices":               "3 weeks",
	"Cereal":               "1 years",
	"Oatmeal":              "1 years",
	"Spreads":              "6 months",
	"Chocolate":            "1 years",
	"Gummies":              "1 years",
	"Hard Candies":         "2 years",
	"Detergents":           "Indefinite",
	"Surface Cleaners":     "2 years",
	"Cleaning Tools":       "Indefinite",
	"Greeting Cards":       "Indefinite",
	"Gift Sets":            "1 years",
	"Flowers":              "7 days",
	"Kitchenware":          "Indefinite",
	"Batteries":            "5 years",
	"Light Bulbs":          "Indefinite",
	"Fresh Produce":        "1 weeks",
	"Dairy":                "2 weeks",
	"Frozen Foods":         "6 months",
	"Poultry":              "4 days",
	"Beef & Pork":          "5 days",
	"Seafood":              "3 days",
	"Pasta & Rice":         "2 years",
	"Canned Goods":         "2 years",
	"Condiments":           "1 years",
	"Paper Towels":         "Indefinite",
	"Toilet Paper":         "Indefinite",
	"Disposable Tableware": "Indefinite",
	"Chips":                "3 months",
	"Cookies":              "4 months",
	"Nuts & Trail Mix":     "6 months",
	"Hot Beverages":        "1 years",
	"Winter Essentials":    "Indefinite",
	"Gardening":            "2 years",
	"Spring Cleaning":      "Indefinite",
	"Grilling":             "2 years",
	"Outdoor":              "2 years",
	"Autumn Treats":        "2 weeks",
	"Halloween Decor":      "Indefinite",
	"Cheese & Crackers":    "3 weeks",
	"Dips & Spreads":       "2 weeks",
	"Ready Snacks":         "5 days",
}

// subcategoryMarkup is doubled when building the markup table; missing
// subcategories use 1.
var subcategoryMarkup = map[string]float64{
	"Bread":                0.30,
	"Pastries":             0.40,
	"Cakes":                0.35,
	"Water":                0.25,
	"Soft Drinks":          0.30,
	"Juices":               0.25,
	"Cereal":               0.20,
	"Oatmeal":              0.20,
	"Spreads":              0.25,
	"Chocolate":            0.35,
	"Gummies":              0.40,
	"Hard Candies":         0.40,
	"Detergents":           0.20,
	"Surface Cleaners":     0.25,
	"Cleaning Tools":       0.30,
	"Greeting Cards":       0.50,
	"Gift Sets":            0.45,
	"Flowers":              0.50,
	"Kitchenware":          0.25,
	"Batteries":            0.30,
	"Light Bulbs":          0.25,
	"Fresh Produce":        0.15,
	"Dairy":                0.12,
	"Frozen Foods":         0.20,
	"Poultry":              0.15,
	"Beef & Pork":          0.15,
	"Seafood":              0.18,
	"Pasta & Rice":         0.15,
	"Canned Goods":         0.15,
	"Condiments":           0.20,
	"Paper Towels":         0.18,
	"Toilet Paper":         0.18,
	"Disposable Tableware": 0.25,
	"Chips":                0.30,
	"Cookies":              0.30,
	"Nuts & Trail Mix":     0.28,
	"Hot Beverages":        0.35,
	"Gardening":            0.30,
	"Grilling":             0.28,
	"Outdoor":              0.32,
	"Autumn Treats":        0.35,
	"Halloween Decor":      0.45,
	"Cheese & Crackers":    0.25,
	"Dips & Spreads":       0.25,
	"Ready Snacks":         0.30,
}

// normalDayDiscountItems are subcategories discounted on promotional days.
var normalDayDiscountItems = setOf(
	"Bread", "Pastries", "Juices", "Cereal", "Soft Drinks", "Chips", "Cookies",
	"Frozen Foods", "Canned Goods", "Detergents", "Paper Towels", "Toilet Paper",
	"Dips & Spreads", "Fresh Produce",
)

// holidayDiscountItems are subcategories discounted on holidays.
var holidayDiscountItems = setOf(
	"Cakes", "Chocolate", "Gummies", "Hard Candies", "Gift Sets", "Greeting Cards",
	"Flowers", "Beef & Pork", "Poultry", "Seafood", "Soft Drinks", "Chips",
	"Nuts & Trail Mix", "Hot Beverages", "Grilling", "Outdoor", "Autumn Treats",
	"Halloween Decor", "Cheese & Crackers", "Disposable Tableware",
)

type department struct {
	name  string
	roles []string
	rates []float64
	// count is the per-role headcount in a large store.
	count int
}

var departments = []department{
	{"Management", []string{"Store Manager", "Assistant Store Manager"}, []float64{38.50, 29.75}, 1},
	{"Front End", []string{staff.RoleCashier, "Customer Service Associate"}, []float64{15.75, 16.50}, 5},
	{"Fresh Foods", []string{"Produce Associate", "Deli Associate", "Bakery Associate", "Meat & Seafood Associate"}, []float64{16.25, 16.50, 16.75, 18.00}, 2},
	{"Operations", []string{"Stock Associate", "Receiving Associate"}, []float64{16.00, 17.25}, 3},
	{"Facilities", []string{"Janitor", "Security Officer"}, []float64{15.50, 19.00}, 1},
}

// maleShare is the probability an employee in a role is male; other roles
// use 0.5.
var maleShare = map[string]float64{
	"Store Manager":            0.55,
	staff.RoleCashier:          0.35,
	"Bakery Associate":         0.40,
	"Meat & Seafood Associate": 0.75,
	"Receiving Associate":      0.70,
	"Stock Associate":          0.65,
	"Security Officer":         0.80,
}

type ageGroup struct {
	from, to int
}

var ageGroups = []ageGroup{{18, 22}, {23, 30}, {31, 40}, {41, 50}, {51, 60}, {61, 70}}

var (
	employeeAgeProbs = []float64{0.25, 0.30, 0.20, 0.10, 0.10, 0.05}
	customerAgeProbs = []float64{0.22, 0.20, 0.14, 0.16, 0.12, 0.14}
)

const (
	customerMaleShare = 0.4854
	recurringMembers  = 0.55
	occasionalMembers = 0.05
)

func setOf(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}
