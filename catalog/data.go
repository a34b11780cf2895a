package catalog

import "github.com/velora-boutique/velora-api/models"

var productsData = []models.Product{
	{
		ID:          1,
		Name:        "Embroidered Maxi Dress",
		Price:       189.99,
		Description: "Hand-embroidered maxi dress with floral details. Made from 100% organic cotton with adjustable waist ties for the perfect fit.",
		Image:       "https://images.unsplash.com/photo-1618932260643-eee4a2f652a6?q=80&w=3080&auto=format&fit=crop",
		Category:    "dresses",
		Tags:        []string{"maxi", "summer", "embroidered", "floral"},
		Featured:    true,
		InStock:     true,
		Colors:      []string{"Ivory", "Rose", "Sage"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Rating:      4.8,
		Reviews:     24,
	},
	{
		ID:          2,
		Name:        "Vintage-Inspired Cocktail Dress",
		Price:       159.99,
		Description: "A timeless piece with vintage-inspired details and modern silhouette. Perfect for special occasions and evening events.",
		Image:       "https://images.unsplash.com/photo-1566174053879-31528523f8ae?q=80&w=2051&auto=format&fit=crop",
		Category:    "dresses",
		Tags:        []string{"cocktail", "vintage", "evening", "party"},
		Featured:    true,
		InStock:     true,
		Colors:      []string{"Burgundy", "Navy", "Black"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Rating:      4.7,
		Reviews:     18,
	},
	{
		ID:          3,
		Name:        "Hand-Woven Wall Hanging",
		Price:       89.99,
		Description: "Intricately hand-woven wall hanging made with sustainable materials. Each piece features unique patterns and natural color variations.",
		Image:       "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?q=80&w=2158&auto=format&fit=crop",
		Category:    "decor",
		Tags:        []string{"wall art", "woven", "bohemian", "handmade"},
		Featured:    true,
		InStock:     true,
		Colors:      []string{"Natural", "Terracotta", "Indigo"},
		Rating:      4.9,
		Reviews:     32,
	},
	{
		ID:          4,
		Name:        "Hand-Painted Ceramic Vase",
		Price:       68.50,
		Description: "Each vase is carefully hand-painted with artistic designs inspired by nature. Perfect as a statement piece for any room.",
		Image:       "https://images.unsplash.com/photo-1578913071428-342d790e5388?q=80&w=3074&auto=format&fit=crop",
		Category:    "decor",
		Tags:        []string{"vase", "ceramic", "handpainted", "home"},
		Featured:    false,
		InStock:     true,
		Colors:      []string{"Blue", "Earth", "Mixed"},
		Rating:      4.6,
		Reviews:     15,
	},
	{
		ID:          5,
		Name:        "Handcrafted Leather Tote",
		Price:       129.99,
		Description: "Sustainable leather tote bag, handcrafted by skilled artisans. Features inner pockets and durable stitching for everyday use.",
		Image:       "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?q=80&w=3026&auto=format&fit=crop",
		Category:    "accessories",
		Tags:        []string{"bag", "leather", "tote", "everyday"},
		Featured:    false,
		InStock:     true,
		Colors:      []string{"Tan", "Brown", "Black"},
		Rating:      4.8,
		Reviews:     27,
	},
	{
		ID:          6,
		Name:        "Boho Linen Wrap Dress",
		Price:       145.00,
		Description: "Flowing linen wrap dress with bohemian-inspired details. Perfect for warm weather and comfortable for all-day wear.",
		Image:       "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?q=80&w=3026&auto=format&fit=crop",
		Category:    "dresses",
		Tags:        []string{"linen", "boho", "casual", "summer"},
		Featured:    true,
		InStock:     true,
		Colors:      []string{"Natural", "Sage", "Terracotta"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Rating:      4.9,
		Reviews:     22,
	},
	{
		ID:          7,
		Name:        "Hand-Knit Throw Blanket",
		Price:       115.00,
		Description: "Cozy throw blanket hand-knit from premium sustainable yarn. Perfect for adding warmth and texture to any living space.",
		Image:       "https://images.unsplash.com/photo-1631222413336-44e87f11d4a9?q=80&w=3024&auto=format&fit=crop",
		Category:    "decor",
		Tags:        []string{"blanket", "knit", "cozy", "home"},
		Featured:    false,
		InStock:     true,
		Colors:      []string{"Cream", "Gray", "Rust"},
		Rating:      4.7,
		Reviews:     19,
	},
	{
		ID:          8,
		Name:        "Macramé Plant Hanger",
		Price:       42.99,
		Description: "Intricately crafted macramé plant hanger made from 100% cotton rope. Adds bohemian charm to your indoor garden.",
		Image:       "https://images.unsplash.com/photo-1615226858046-a40206907ad8?q=80&w=3024&auto=format&fit=crop",
		Category:    "decor",
		Tags:        []string{"macrame", "plant", "boho", "hanging"},
		Featured:    false,
		InStock:     true,
		Colors:      []string{"Natural", "White"},
		Rating:      4.8,
		Reviews:     14,
	},
	{
		ID:          9,
		Name:        "Artisanal Beaded Necklace",
		Price:       78.50,
		Description: "Hand-beaded statement necklace featuring unique patterns. Each piece is crafted individually and carries its own character.",
		Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?q=80&w=3087&auto=format&fit=crop",
		Category:    "accessories",
		Tags:        []string{"jewelry", "beaded", "statement", "handmade"},
		Featured:    false,
		InStock:     true,
		Colors:      []string{"Multi"},
		Rating:      4.9,
		Reviews:     28,
	},
	{
		ID:          10,
		Name:        "Hand-Embroidered Cushion Cover",
		Price:       54.99,
		Description: "Decorative cushion cover with intricate hand embroidery. Adds a touch of artisanal elegance to your home decor.",
		Image:       "https://images.unsplash.com/photo-1616627052149-22c4f8a6a5a7?q=80&w=3131&auto=format&fit=crop",
		Category:    "decor",
		Tags:        []string{"cushion", "embroidered", "home", "decorative"},
		Featured:    false,
		InStock:     true,
		Colors:      []string{"Natural", "Blue", "Terracotta"},
		Rating:      4.7,
		Reviews:     16,
	},
	{
		ID:          11,
		Name:        "Patchwork Linen Kimono",
		Price:       135.00,
		Description: "Lightweight kimono featuring a unique patchwork of handwoven linen fabrics. Perfect as a layering piece for all seasons.",
		Image:       "https://images.unsplash.com/photo-1539008835657-9e8e9680c956?q=80&w=3087&auto=format&fit=crop",
		Category:    "dresses",
		Tags:        []string{"kimono", "linen", "patchwork", "layering"},
		Featured:    false,
		InStock:     true,
		Colors:      []string{"Mixed Natural"},
		Sizes:       []string{"One Size"},
		Rating:      4.8,
		Reviews:     21,
	},
	{
		ID:          12,
		Name:        "Hand-Carved Wooden Serving Bowl",
		Price:       89.00,
		Description: "Beautiful serving bowl hand-carved from sustainable wood. Each piece showcases the natural grain and unique characteristics of the wood.",
		Image:       "https://images.unsplash.com/photo-1614632538393-32e4685bfcf0?q=80&w=3024&auto=format&fit=crop",
		Category:    "decor",
		Tags:        []string{"wood", "bowl", "kitchen", "serving"},
		Featured:    false,
		InStock:     true,
		Colors:      []string{"Natural Wood"},
		Rating:      4.9,
		Reviews:     17,
	},
}
