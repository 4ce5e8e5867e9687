package authz

// HasPermission reports whether the required permission code appears in the
// granted set. Comparison is exact string equality: no case folding, no
// wildcard or hierarchy expansion (holding "admin:system" does not imply
// "read:venues"). A nil or empty grant set always denies.
func HasPermission(granted []string, required string) bool {
	for _, g := range granted {
		if g == required {
			return true
		}
	}
	return false
}
