package valueobjects

import "fmt"

// Category of a maintenance ticket. The wire values are the French
// labels the portal has always used.
type Category string

const (
	CategoryPlumbing   Category = "plomberie"
	CategoryElectrical Category = "électricité"
	CategoryConcierge  Category = "concierge"
	CategoryOther      Category = "autre"
)

var validCategories = map[Category]bool{
	CategoryPlumbing:   true,
	CategoryElectrical: true,
	CategoryConcierge:  true,
	CategoryOther:      true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
