package finance

// The PIN gate is a convenience lock, not cryptography: a stored 4-digit
// string compared for equality. No stored pin means the lock screen is
// bypassed entirely.

// Pin returns the stored pin, or nil when the lock is disabled.
func (b *Book) Pin() *string {
	var pin *string
	b.store.Get(keySecurityPin, &pin)
	return pin
}

// SetPin stores the pin, or clears it when nil.
func (b *Book) SetPin(pin *string) { b.store.Set(keySecurityPin, pin) }

// VerifyPin reports whether the candidate matches the stored pin exactly.
// With no stored pin nothing matches; callers should consult Locked first.
func (b *Book) VerifyPin(candidate string) bool {
	pin := b.Pin()
	return pin != nil && *pin == candidate
}

// Locked reports whether a pin gate is active.
func (b *Book) Locked() bool { return b.Pin() != nil }
