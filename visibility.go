package pastebin

// Visibility controls who can see a paste.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
)

// visibilityCodes maps each visibility to the numeric code the service
// speaks on the wire.
var visibilityCodes = map[Visibility]int{
	VisibilityPublic:   0,
	VisibilityUnlisted: 1,
	VisibilityPrivate:  2,
}

// Valid reports whether v is one of the three recognized visibilities.
func (v Visibility) Valid() bool {
	_, ok := visibilityCodes[v]
	return ok
}

// code returns the service's numeric code for v.
func (v Visibility) code() int {
	return visibilityCodes[v]
}

// visibilityFromCode maps a wire code back to its name. Unrecognized codes
// fall back to public.
func visibilityFromCode(code int) Visibility {
	switch code {
	case 1:
		return VisibilityUnlisted
	case 2:
		return VisibilityPrivate
	default:
		return VisibilityPublic
	}
}

// AccountType is the service account tier.
type AccountType string

const (
	AccountNormal AccountType = "normal"
	AccountPro    AccountType = "pro"
)

// accountTypeFromCode maps a wire code back to its tier name. Unrecognized
// codes fall back to normal.
func accountTypeFromCode(code int) AccountType {
	if code == 1 {
		return AccountPro
	}
	return AccountNormal
}
