package pipeline

import "aid-gap-analyzer/internal/dashboard/core/domain"

// ApplyFilters returns the records whose region and organization are both
// selected, in input order. Unknown labels are rejected with
// domain.ErrInvalidSelection before any record is looked at.
func ApplyFilters(records []domain.DeliveryRecord, sel domain.Selection) ([]domain.DeliveryRecord, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	out := make([]domain.DeliveryRecord, 0)
	if len(sel.Regions) == 0 || len(sel.Organizations) == 0 {
		return out, nil
	}

	regions := toSet(sel.Regions)
	orgs := toSet(sel.Organizations)

	for _, r := range records {
		if _, ok := regions[r.Region]; !ok {
			continue
		}
		if _, ok := orgs[r.Organization]; !ok {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}
