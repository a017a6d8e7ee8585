package domain

// PrivacyNote acompaña cada registro persistido.
const PrivacyNote = "Identifiers salted-hash only; no plaintext PII persisted."

// CandidateRecord es la foto seudonimizada que se persiste al terminar.
type CandidateRecord struct {
	IDEmail          *string  `json:"id_email"`
	IDPhone          *string  `json:"id_phone"`
	FullName         *string  `json:"full_name"`
	ExperienceYears  *float64 `json:"experience_years"`
	DesiredPositions *string  `json:"desired_positions"`
	Location         *string  `json:"location"`
	TechStack        *string  `json:"tech_stack"`
	Questions        []string `json:"questions"`
	TS               int64    `json:"ts"`
	Privacy          string   `json:"privacy"`
}

// ExportBundle es la descarga local; usa el perfil sin seudonimizar.
type ExportBundle struct {
	Candidate CandidateProfile `json:"candidate"`
	Questions []string         `json:"questions"`
	Timestamp int64            `json:"timestamp"`
}
