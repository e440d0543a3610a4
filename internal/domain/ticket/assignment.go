package ticket

import (
	"residconnect/internal/domain/professional"
	vo "residconnect/internal/domain/ticket/valueobjects"
)

// categoryTypes routes a ticket category to the professional trade that
// handles it. Tickets with no matching trade configured stay open.
var categoryTypes = map[vo.Category]professional.Type{
	vo.CategoryPlumbing:   professional.TypePlumber,
	vo.CategoryElectrical: professional.TypeElectrician,
	vo.CategoryConcierge:  professional.TypeConcierge,
	vo.CategoryOther:      professional.TypeAgency,
}

// RequiredProfessionalType returns the trade responsible for a ticket
// category. The second return is false for categories outside the
// routing table.
func RequiredProfessionalType(category vo.Category) (professional.Type, bool) {
	profType, ok := categoryTypes[category]
	return profType, ok
}
