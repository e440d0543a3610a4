package valueobjects

import "fmt"

// Category of a resident message. "intervention" announcements are
// restricted to agency professionals.
type Category string

const (
	CategoryIntervention Category = "intervention"
	CategoryEvent        Category = "evenement"
	CategoryGeneral      Category = "general"
)

var validCategories = map[Category]bool{
	CategoryIntervention: true,
	CategoryEvent:        true,
	CategoryGeneral:      true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func (c Category) IsIntervention() bool {
	return c == CategoryIntervention
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid message category: %s", s)
	}
	return c, nil
}
