package catalog

const placeholderImage = "https://via.placeholder.com/150"

// Mock returns the built-in product list used when no catalog file is given.
func Mock() Products {
	return Products{
		{
			ID:          "1",
			Name:        "Product A",
			Price:       "$10",
			Quality:     4,
			Description: "Description of Product A",
			ImageURL:    placeholderImage,
		},
		{
			ID:          "2",
			Name:        "Product B",
			Price:       "$15",
			Quality:     5,
			Description: "Description of Product B",
			ImageURL:    placeholderImage,
		},
		{
			ID:          "3",
			Name:        "Product C",
			Price:       "$7",
			Quality:     2,
			Description: "Description of Product C. *Limited* stock.",
			ImageURL:    placeholderImage,
		},
		{
			ID:          "4",
			Name:        "Product D",
			Price:       "$22",
			Quality:     3,
			Description: "Description of Product D",
			ImageURL:    placeholderImage,
		},
		{
			ID:          "5",
			Name:        "Product E",
			Price:       "$5",
			Quality:     1,
			Description: "Description of Product E",
			ImageURL:    "",
		},
	}
}
