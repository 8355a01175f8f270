package backend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriority(t *testing.T) {
	require.Equal(t, 1, priority(true))
	require.Equal(t, 2, priority(false))
}

func TestShouldUpdateHigherPriorityWins(t *testing.T) {
	// A file-priority hit outranks an earlier directory-priority hit.
	update, p := shouldUpdate(5, 0, 1, true, false)
	require.True(t, update)
	require.Equal(t, 2, p)
}

func TestShouldUpdateEqualPriorityLastIndexWins(t *testing.T) {
	update, p := shouldUpdate(3, 2, 2, false, false)
	require.True(t, update)
	require.Equal(t, 2, p)

	update, _ = shouldUpdate(1, 2, 2, false, false)
	require.False(t, update)
}

func TestShouldUpdateDirectoryReinclusionOverridesEarlierFileExclusion(t *testing.T) {
	// An include pattern that matched as a directory (dirHit) at a later
	// index overrides an earlier file-priority exclusion, even though its
	// own priority (1) is lower.
	update, _ := shouldUpdate(4, 1, 2, true, true)
	require.True(t, update)
}

func TestResolveOrderIndependent(t *testing.T) {
	cands := []candidate{
		{index: 0, include: true, dirHit: false},
		{index: 1, include: false, dirHit: true},
	}
	forward := resolve(cands)

	reversed := []candidate{cands[1], cands[0]}
	backward := resolve(reversed)

	require.Equal(t, forward, backward)
	require.True(t, forward.Matched)
	require.True(t, forward.Include)
	require.Equal(t, 0, forward.Index)
}

func TestResolveNoCandidates(t *testing.T) {
	result := resolve(nil)
	require.False(t, result.Matched)
	require.Equal(t, -1, result.Index)
}

// fakePattern is a canned PatternMatcher: hit controls whether Test reports
// a match at all, dir whether that match carries the directory marker.
type fakePattern struct {
	hit     bool
	dir     bool
	include bool
	noop    bool
}

func (p fakePattern) Test(string) (bool, bool) { return p.hit, p.hit && p.dir }
func (p fakePattern) Include() bool            { return p.include }
func (p fakePattern) NoOp() bool               { return p.noop }

func TestSimpleReversedMatchesForwardOrder(t *testing.T) {
	inclFile := fakePattern{hit: true, include: true}
	exclFile := fakePattern{hit: true}
	inclDir := fakePattern{hit: true, dir: true, include: true}
	exclDir := fakePattern{hit: true, dir: true}
	miss := fakePattern{}
	noop := fakePattern{noop: true}

	cases := []struct {
		name     string
		patterns []PatternMatcher
		include  bool
		index    int
		matched  bool
	}{
		{"no patterns", nil, false, -1, false},
		{"no hits", []PatternMatcher{miss, miss}, false, -1, false},
		{"last file hit wins", []PatternMatcher{inclFile, exclFile}, false, 1, true},
		{"file hit outranks later dir hit", []PatternMatcher{inclFile, exclDir}, true, 0, true},
		{"include dir reopens for trailing exclusion", []PatternMatcher{inclFile, inclDir, exclDir}, false, 2, true},
		{"include dir wins when nothing follows", []PatternMatcher{exclFile, inclDir}, true, 1, true},
		{"include dir loses to later file hit", []PatternMatcher{inclDir, exclFile}, false, 1, true},
		{"exclude dir chain keeps highest index", []PatternMatcher{exclDir, exclDir, exclDir}, false, 2, true},
		{"noop slots keep original indices", []PatternMatcher{noop, inclFile, noop, exclFile}, false, 3, true},
		{"dir reinclusion through a file exclusion", []PatternMatcher{exclFile, inclDir, exclFile, inclDir}, true, 3, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, reversed := range []bool{false, true} {
				r := NewSimple(tc.patterns, reversed).MatchFile("any")
				require.Equalf(t, tc.matched, r.Matched, "reversed=%v", reversed)
				require.Equalf(t, tc.index, r.Index, "reversed=%v", reversed)
				if tc.matched {
					require.Equalf(t, tc.include, r.Include, "reversed=%v", reversed)
				}
			}
		})
	}
}
