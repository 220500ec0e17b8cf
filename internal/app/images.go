package app

const (
	ImageMissingURL   = "https://placehold.co/300x200/888/FFF?text=Image+Missing"
	ImageLoadErrorURL = "https://placehold.co/300x200/888/FFF?text=Image+Load+Error"
)

var imageMap = map[string]string{
	// cities
	"enter_your_image_for_sydney.jpg":    "https://placehold.co/300x200/4ECDC4/1A1A1A?text=Sydney",
	"enter_your_image_for_melbourne.jpg": "https://placehold.co/300x200/FF6B6B/1A1A1A?text=Melbourne",
	"enter_your_image_for_tokyo.jpg":     "https://placehold.co/300x200/4ECDC4/1A1A1A?text=Tokyo",
	"enter_your_image_for_kyoto.jpg":     "https://placehold.co/300x200/FF6B6B/1A1A1A?text=Kyoto",
	"enter_your_image_for_rio.jpg":       "https://placehold.co/300x200/4ECDC4/1A1A1A?text=Rio",
	"enter_your_image_for_sao-paulo.jpg": "https://placehold.co/300x200/FF6B6B/1A1A1A?text=Sao+Paulo",

	// temples
	"enter_your_image_for_angkor-wat.jpg": "https://placehold.co/300x200/F7FFF7/1A1A1A?text=Angkor+Wat",
	"enter_your_image_for_taj-mahal.jpg":  "https://placehold.co/300x200/F7FFF7/1A1A1A?text=Taj+Mahal",

	// beaches
	"enter_your_image_for_bora-bora.jpg":  "https://placehold.co/300x200/69DBFF/1A1A1A?text=Bora+Bora",
	"enter_your_image_for_copacabana.jpg": "https://placehold.co/300x200/69DBFF/1A1A1A?text=Copacabana",
}

// ImageURL maps an image key to its placeholder, or ImageMissingURL.
func ImageURL(key string) string {
	if u, ok := imageMap[key]; ok {
		return u
	}
	return ImageMissingURL
}
