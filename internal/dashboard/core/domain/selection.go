package domain

import (
	"fmt"
	"strings"
)

// Selection is the active filter. Within a dimension labels are OR-combined,
// across dimensions AND-combined. An empty dimension selects nothing.
type Selection struct {
	Regions       []string
	Organizations []string
}

// FullSelection selects every known region and organization.
func FullSelection() Selection {
	return Selection{Regions: Regions(), Organizations: Organizations()}
}

// Validate rejects labels outside the closed sets.
func (s Selection) Validate() error {
	var unknown []string
	for _, r := range s.Regions {
		if !IsKnownRegion(r) {
			unknown = append(unknown, "region "+quote(r))
		}
	}
	for _, o := range s.Organizations {
		if !IsKnownOrganization(o) {
			unknown = append(unknown, "organization "+quote(o))
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: unknown %s", ErrInvalidSelection, strings.Join(unknown, ", "))
	}
	return nil
}

func (s Selection) HasRegion(r string) bool { return contains(s.Regions, r) }

func (s Selection) HasOrganization(o string) bool { return contains(s.Organizations, o) }

// ActiveOrganizations counts distinct selected organizations.
func (s Selection) ActiveOrganizations() int {
	seen := make(map[string]struct{}, len(s.Organizations))
	for _, o := range s.Organizations {
		seen[o] = struct{}{}
	}
	return len(seen)
}

// Clone returns a selection that shares no backing arrays with s.
func (s Selection) Clone() Selection {
	return Selection{
		Regions:       append([]string{}, s.Regions...),
		Organizations: append([]string{}, s.Organizations...),
	}
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
