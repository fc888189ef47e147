package dedupe

// GroupDuplicates clusters one scan's records into duplicate groups.
//
// Records are partitioned into year buckets (year 0 forms its own
// unknown-year bucket) so candidates are only sought among records that
// parsed to the same year. Within a bucket, each unprocessed record in scan
// order becomes the anchor of a new group and claims every later
// unprocessed record that matches it. Assignment is irrevocable: a record
// that would score higher against a later anchor stays where it was first
// claimed. Groups with a single member are discarded.
//
// Buckets are visited in first-seen input order so the output is fully
// determined by the input order, not by map iteration.
func GroupDuplicates(records []FileRecord, cfg MatchConfig) []Group {
	if len(records) == 0 {
		return nil
	}

	buckets := make(map[int][]FileRecord)
	var bucketOrder []int
	for _, rec := range records {
		year := rec.Year
		if year <= 0 {
			year = 0
		}
		if _, seen := buckets[year]; !seen {
			bucketOrder = append(bucketOrder, year)
		}
		buckets[year] = append(buckets[year], rec)
	}

	processed := make(map[string]struct{}, len(records))
	var groups []Group

	for _, year := range bucketOrder {
		bucket := buckets[year]
		for i, anchor := range bucket {
			if _, done := processed[anchor.Path]; done {
				continue
			}

			group := Group{anchor}
			processed[anchor.Path] = struct{}{}

			for _, candidate := range bucket[i+1:] {
				if _, done := processed[candidate.Path]; done {
					continue
				}
				if cfg.matches(anchor, candidate) {
					group = append(group, candidate)
					processed[candidate.Path] = struct{}{}
				}
			}

			if len(group) >= 2 {
				groups = append(groups, group)
			}
		}
	}

	return groups
}
