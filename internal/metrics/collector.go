package metrics

import (
	"fmt"
	"io"
	"math"
	"sort"
	"sync"
	"text/tabwriter"

	"moodtune/internal/engine"
)

// Collector tallies recommendation results. It is safe for concurrent use.
type Collector struct {
	mu sync.Mutex

	total    int
	outcomes map[engine.Outcome]int
	phases   map[engine.Phase]int

	// Picks by URI; duplicate URIs in a candidate set share a counter.
	picks map[string]int
}

func New() *Collector {
	return &Collector{
		outcomes: make(map[engine.Outcome]int),
		phases:   make(map[engine.Phase]int),
		picks:    make(map[string]int),
	}
}

func (c *Collector) Record(res engine.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.total++
	c.outcomes[res.Outcome]++
	if res.Selected() {
		c.phases[res.Phase]++
		c.picks[res.Track.URI]++
	}
}

type Snapshot struct {
	Total    int
	Outcomes map[string]int
	Phases   map[string]int
	Picks    map[string]int
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Total:    c.total,
		Outcomes: make(map[string]int, len(c.outcomes)),
		Phases:   make(map[string]int, len(c.phases)),
		Picks:    make(map[string]int, len(c.picks)),
	}
	for k, v := range c.outcomes {
		s.Outcomes[k.String()] = v
	}
	for k, v := range c.phases {
		s.Phases[k.String()] = v
	}
	for k, v := range c.picks {
		s.Picks[k] = v
	}
	return s
}

// Row compares the observed pick rate of one URI with its expected probability.
type Row struct {
	URI      string
	Title    string
	Picks    int
	Observed float64
	Expected float64
}

// Compare merges expected shares by URI, in candidate order, against the recorded picks.
func (c *Collector) Compare(expected []engine.Share) []Row {
	snap := c.Snapshot()

	var rows []Row
	index := make(map[string]int)
	for _, s := range expected {
		i, ok := index[s.Track.URI]
		if !ok {
			i = len(rows)
			index[s.Track.URI] = i
			rows = append(rows, Row{URI: s.Track.URI, Title: s.Track.DisplayTitle()})
		}
		rows[i].Expected += s.Probability
	}

	selected := snap.Outcomes[engine.OutcomeSelected.String()]
	for i := range rows {
		rows[i].Picks = snap.Picks[rows[i].URI]
		if selected > 0 {
			rows[i].Observed = float64(rows[i].Picks) / float64(selected)
		}
	}
	return rows
}

// MaxDeviation is the largest absolute gap between observed and expected rates.
func MaxDeviation(rows []Row) float64 {
	worst := 0.0
	for _, r := range rows {
		worst = math.Max(worst, math.Abs(r.Observed-r.Expected))
	}
	return worst
}

func (c *Collector) PrintReport(out io.Writer, expected []engine.Share) {
	snap := c.Snapshot()
	rows := c.Compare(expected)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(out, "\n📊 \033[1mSELECTION REPORT\033[0m")
	fmt.Fprintln(out, "────────────────────────────────────────")

	fmt.Fprintln(w, "\033[1;36m[ OUTCOMES ]\033[0m\t")
	fmt.Fprintf(w, "  Trials:\t%d\n", snap.Total)
	for _, k := range sortedKeys(snap.Outcomes) {
		fmt.Fprintf(w, "  %s:\t%d\n", k, snap.Outcomes[k])
	}
	for _, k := range sortedKeys(snap.Phases) {
		fmt.Fprintf(w, "  decided by %s:\t%d\n", k, snap.Phases[k])
	}
	fmt.Fprintln(w, "\t")

	fmt.Fprintln(w, "\033[1;36m[ DISTRIBUTION ]\033[0m\t")
	if len(rows) == 0 {
		fmt.Fprintln(w, "  (No candidates)")
	} else {
		fmt.Fprintln(w, "  Track\tURI\tPicks\tObserved\tExpected")
		for _, r := range rows {
			fmt.Fprintf(w, "  %s\t%s\t%d\t%.2f%%\t%.2f%%\n", r.Title, r.URI, r.Picks, r.Observed*100, r.Expected*100)
		}
		fmt.Fprintf(w, "  Max deviation:\t%.2f%%\n", MaxDeviation(rows)*100)
	}

	w.Flush()
	fmt.Fprintln(out, "")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
