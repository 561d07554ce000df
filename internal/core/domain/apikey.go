package domain

// Service is the business domain an API key is scoped to.
type Service string

const (
	ServiceFinancial Service = "financial"
	ServiceHR        Service = "hr"
	ServiceIT        Service = "it"
)

// Level is an API key's permission tier within its service.
type Level string

const (
	LevelRead    Level = "read"
	LevelAdmin   Level = "admin"
	LevelPayroll Level = "payroll"
	LevelSupport Level = "support"
)

// Satisfies reports whether a key holding level l clears the required
// level. Admin clears everything; every other level only clears itself.
// Read, payroll and support are unordered siblings.
func (l Level) Satisfies(required Level) bool {
	return l == required || l == LevelAdmin
}

// APIKey maps a key string to the service and permission level it grants.
// Keys are process-wide constants: no expiry, no rotation.
type APIKey struct {
	Key     string  `json:"key"`
	Service Service `json:"service"`
	Level   Level   `json:"level"`
}

// DefaultAPIKeys returns the demo key set the server ships with.
func DefaultAPIKeys() []APIKey {
	return []APIKey{
		{Key: "fin_12345abcde", Service: ServiceFinancial, Level: LevelRead},
		{Key: "fin_admin_67890xyz", Service: ServiceFinancial, Level: LevelAdmin},
		{Key: "hr_12345abcde", Service: ServiceHR, Level: LevelRead},
		{Key: "hr_admin_67890xyz", Service: ServiceHR, Level: LevelAdmin},
		{Key: "payroll_24680mnop", Service: ServiceHR, Level: LevelPayroll},
		{Key: "it_12345abcde", Service: ServiceIT, Level: LevelRead},
		{Key: "it_admin_67890xyz", Service: ServiceIT, Level: LevelAdmin},
		{Key: "it_support_24680mnop", Service: ServiceIT, Level: LevelSupport},
	}
}
