package episodeid

import "strconv"

// MaxSplitEpisode bounds the episode part when splitting a 3-digit bare
// number into season+episode. "401" splits to S04E01 because 01 <= 50;
// "799" stays an absolute episode because 99 exceeds the bound.
//
// Known blind spot: long-running shows with more than 50 episodes per
// season defeat the split. The bound is deliberate; tune it rather than
// removing it.
const MaxSplitEpisode = 50

// resolveBareNumber turns a bare numeric capture into season and episode
// using the digit width of the original text:
//
//	4 digits: 1205 -> S12E05, accepted only when both parts are >= 1
//	3 digits: 401 -> S04E01 when the episode part is in [1, MaxSplitEpisode],
//	          otherwise an absolute episode with season unknown
//	1-2 digits: absolute episode, season unknown
//
// Values below 1 yield (nil, nil).
func resolveBareNumber(raw string) (season, episode *int) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, nil
	}

	switch len(raw) {
	case 4:
		s, e := n/100, n%100
		if s >= 1 && e >= 1 {
			return intPtr(s), intPtr(e)
		}
	case 3:
		s, e := n/100, n%100
		if s >= 1 && e >= 1 && e <= MaxSplitEpisode {
			return intPtr(s), intPtr(e)
		}
		return nil, intPtr(n)
	}

	if n >= 1 {
		return nil, intPtr(n)
	}
	return nil, nil
}
