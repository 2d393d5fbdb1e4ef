package constants

import "fmt"

// ==========================
// ✅ Role Names
// ==========================
const (
	RoleRelawan    = "relawan"
	RolePembimbing = "pembimbing"
	RoleAdmin      = "admin"
)

// Template pesan error role
const (
	ErrOnlyPembimbingCanAccess = "❌ Hanya pembimbing atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorPembimbing(feature string) string {
	return fmt.Sprintf(ErrOnlyPembimbingCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleRelawan,
		RolePembimbing,
		RoleAdmin,
	}

	PembimbingAndAbove = []string{
		RolePembimbing,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// ValidRole memastikan role user dikenal sistem.
func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ==========================
// ✅ Kategori ZISWAF & status tetap
// ==========================
var (
	DonationCategories = []string{"zakat", "infaq", "sedekah", "wakaf"}
	DonationTypes      = []string{"incoming", "outgoing"}
	MuzakkiStatuses    = []string{"baru", "follow-up", "donasi"}
	KomunikasiTypes    = []string{"call", "whatsapp", "meeting"}
)
