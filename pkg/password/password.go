// Package password implements the reversible credential encoding used across
// the LifeLine QR clients and the temporary-password generator for resets.
// This is deliberately not a cryptographic hash: the browser front-end
// produces the same encoding before transmission, and the server only ever
// compares or stores the encoded form.
package password

import (
	"encoding/base64"
	"fmt"
	"math/rand/v2"
)

// appName salts the encoding the same way every client does.
const appName = "LifeLine QR"

// Encode returns the wire/storage form of a plaintext password.
func Encode(plain string) string {
	return base64.StdEncoding.EncodeToString([]byte(plain + appName))
}

// Verify reports whether plain encodes to the stored value.
func Verify(plain, encoded string) bool {
	return Encode(plain) == encoded
}

// GenerateTemporary returns a fresh plaintext temporary password of the form
// Temp followed by four digits, as handed back by the reset flow.
func GenerateTemporary() string {
	return fmt.Sprintf("Temp%d", rand.IntN(9000)+1000)
}
