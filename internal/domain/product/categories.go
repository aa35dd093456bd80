package product

// Product categories stocked by every store.
const (
	CategoryBakery         = "Bakery & Desserts"
	CategoryBeverages      = "Beverages & Water"
	CategoryBreakfast      = "Breakfast"
	CategoryCandy          = "Candy"
	CategoryCleaning       = "Cleaning Supplies"
	CategoryGifts          = "Gifts"
	CategoryHousehold      = "Household Items"
	CategoryGrocery        = "Grocery"
	CategoryMeatSeafood    = "Meat and Seafood"
	CategoryPantry         = "Pantry and Dry Goods"
	CategoryPaperPlastic   = "Paper & Plastic Products"
	CategorySnacks         = "Snacks"
	CategoryWinterSeasonal = "Winter Seasonal"
	CategorySpringSeasonal = "Spring Seasonal"
	CategorySummerSeasonal = "Summer Seasonal"
	CategoryFallSeasonal   = "Fall Seasonal"
	CategoryChilledSnacks  = "Chilled Snacks"
)

// Categories lists every category in a fixed order.
var Categories = []string{
	CategoryBakery,
	CategoryBeverages,
	CategoryBreakfast,
	CategoryCandy,
	CategoryCleaning,
	CategoryGifts,
	CategoryHousehold,
	CategoryGrocery,
	CategoryMeatSeafood,
	CategoryPantry,
	CategoryPaperPlastic,
	CategorySnacks,
	CategoryWinterSeasonal,
	CategorySpringSeasonal,
	CategorySummerSeasonal,
	CategoryFallSeasonal,
	CategoryChilledSnacks,
}
