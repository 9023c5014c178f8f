package admin

// Admin is one entry of the fixed back-office roster. Provisioned by
// operators; this service only reads it.
type Admin struct {
	Name string
	Code string
}
