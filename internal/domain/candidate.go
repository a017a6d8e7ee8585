package domain

// Field identifica cada dato del candidato que se recolecta en la entrevista.
type Field string

const (
	FieldFullName         Field = "full_name"
	FieldEmail            Field = "email"
	FieldPhone            Field = "phone"
	FieldExperienceYears  Field = "experience_years"
	FieldDesiredPositions Field = "desired_positions"
	FieldLocation         Field = "location"
	FieldTechStack        Field = "tech_stack"
)

// FieldOrder es el orden fijo de recoleccion.
var FieldOrder = []Field{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldExperienceYears,
	FieldDesiredPositions,
	FieldLocation,
	FieldTechStack,
}

// CandidateProfile guarda solo los campos ya validados; nil significa pendiente.
type CandidateProfile struct {
	FullName         *string  `json:"full_name,omitempty"`
	Email            *string  `json:"email,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	ExperienceYears  *float64 `json:"experience_years,omitempty"`
	DesiredPositions *string  `json:"desired_positions,omitempty"`
	Location         *string  `json:"location,omitempty"`
	TechStack        *string  `json:"tech_stack,omitempty"`
}

// Has indica si el campo ya fue recolectado.
func (p CandidateProfile) Has(field Field) bool {
	switch field {
	case FieldFullName:
		return p.FullName != nil
	case FieldEmail:
		return p.Email != nil
	case FieldPhone:
		return p.Phone != nil
	case FieldExperienceYears:
		return p.ExperienceYears != nil
	case FieldDesiredPositions:
		return p.DesiredPositions != nil
	case FieldLocation:
		return p.Location != nil
	case FieldTechStack:
		return p.TechStack != nil
	}
	return false
}

// NextMissing devuelve el primer campo sin completar segun FieldOrder.
func (p CandidateProfile) NextMissing() (Field, bool) {
	for _, f := range FieldOrder {
		if !p.Has(f) {
			return f, true
		}
	}
	return "", false
}

// Complete es true cuando todos los campos estan presentes.
func (p CandidateProfile) Complete() bool {
	_, missing := p.NextMissing()
	return !missing
}

// Empty es true cuando todavia no se recolecto nada.
func (p CandidateProfile) Empty() bool {
	for _, f := range FieldOrder {
		if p.Has(f) {
			return false
		}
	}
	return true
}

// WithText devuelve una copia con el campo de texto asignado.
// experience_years no es de texto y se asigna con WithExperienceYears.
func (p CandidateProfile) WithText(field Field, value string) CandidateProfile {
	v := value
	switch field {
	case FieldFullName:
		p.FullName = &v
	case FieldEmail:
		p.Email = &v
	case FieldPhone:
		p.Phone = &v
	case FieldDesiredPositions:
		p.DesiredPositions = &v
	case FieldLocation:
		p.Location = &v
	case FieldTechStack:
		p.TechStack = &v
	}
	return p
}

func (p CandidateProfile) WithExperienceYears(years float64) CandidateProfile {
	y := years
	p.ExperienceYears = &y
	return p
}

// StringValue devuelve el valor o "" si el campo no esta presente.
func StringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
