package grades

import "strings"

// StudentAverage pairs a name with its rounded average. Graded is
// false for students without grades; their Average is meaningless and
// they never rank above a graded student.
type StudentAverage struct {
	Name    string
	Average float64
	Graded  bool
}

// rankAbove reports whether a sorts above b: any real average beats
// "no score", and real averages compare numerically. The explicit
// Graded tag replaces the magic "treat scoreless as -1" placeholder.
func (a StudentAverage) rankAbove(b StudentAverage) bool {
	if a.Graded != b.Graded {
		return a.Graded
	}
	return a.Average > b.Average
}

// Report is the full grade report for a roster.
type Report struct {
	Averages []StudentAverage // insertion order, scoreless entries included
	Max      float64
	Min      float64
	Overall  float64 // average of the per-student averages
}

// BuildReport computes per-student averages plus the max, min and
// overall average over the graded students. The boolean is false when
// no grades exist anywhere on the roster.
func BuildReport(r *Roster) (Report, bool) {
	if !r.HasGrades() {
		return Report{}, false
	}

	var rep Report
	var graded []float64
	for _, s := range r.Students() {
		avg, ok := Average(s.Grades)
		rep.Averages = append(rep.Averages, StudentAverage{Name: s.Name, Average: avg, Graded: ok})
		if ok {
			graded = append(graded, avg)
		}
	}

	rep.Max = graded[0]
	rep.Min = graded[0]
	sum := 0.0
	for _, a := range graded {
		if a > rep.Max {
			rep.Max = a
		}
		if a < rep.Min {
			rep.Min = a
		}
		sum += a
	}
	rep.Overall = round1(sum / float64(len(graded)))
	return rep, true
}

// TopPerformers returns every student tied at the highest average and
// that average. Students without grades are only eligible when nobody
// on the roster has a grade, in which case the boolean is false.
func TopPerformers(r *Roster) ([]string, float64, bool) {
	if !r.HasGrades() {
		return nil, 0, false
	}

	var best StudentAverage
	ranked := make([]StudentAverage, 0, r.Len())
	for _, s := range r.Students() {
		avg, ok := Average(s.Grades)
		sa := StudentAverage{Name: s.Name, Average: avg, Graded: ok}
		ranked = append(ranked, sa)
		if sa.rankAbove(best) {
			best = sa
		}
	}

	var names []string
	for _, sa := range ranked {
		if sa.Graded && sa.Average == best.Average {
			names = append(names, sa.Name)
		}
	}
	return names, best.Average, true
}

// JoinNames renders a name list for display: "A", "A and B",
// "A, B and C".
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
