package types

// PhoneNumber is a phone number as shown to the user. Once persisted it is
// always in canonical form, "(XXX) XXX-XXXX".
type PhoneNumber string

// String returns the string form of the phone number.
func (p PhoneNumber) String() string { return string(p) }

// Key names a single entry in the device key-value store.
type Key string

// String returns the string form of the key.
func (k Key) String() string { return string(k) }

// InstallationID identifies one local installation of the app.
type InstallationID string

// String returns the string form of the installation identifier.
func (id InstallationID) String() string { return string(id) }
