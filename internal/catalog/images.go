package catalog

// DefaultProductImage is used when a product's image key is unknown.
const DefaultProductImage = "/static/images/products/balsan.webp"

var productImages = map[string]string{
	"balsan":       "/static/images/products/balsan.webp",
	"lgCommercial": "/static/images/products/lg-commercial.webp",
	"lgDigital":    "/static/images/products/lg-digital.webp",
	"surglasses":   "/static/images/products/surglasses.webp",
	"eastonhk":     "/static/images/products/eastonhk.webp",
	"rak_ceramics": "/static/images/products/rak-ceramics.webp",
}

// ProductImage resolves an image key to an asset path. The bool is false
// when the key is unknown and the default image was returned.
func ProductImage(key string) (string, bool) {
	if path, ok := productImages[key]; ok {
		return path, true
	}
	return DefaultProductImage, false
}
