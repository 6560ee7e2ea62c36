package discovery

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/gobench-dev/gobench"
)

// suiteEntry is one <benchmark> element's declared parameters, adapted
// from the teacher's Benchmark struct to gobench.Instance's field set.
// A suite file can't carry a function body, so entries are resolved
// against a caller-supplied name->BenchmarkFunc table.
type suiteEntry struct {
	name        string
	threads     int
	iterations  uint64
	repetitions int
	minTime     float64
	args        []int64
	complexity  string
}

// ParseSuiteFile parses a declarative benchmark-suite file at path and
// resolves each <benchmark name="..."> element against bodies, in the
// manner of the teacher's ParseBenchmarkFile/ParseBenchmark pair.
func ParseSuiteFile(path string, bodies map[string]gobench.BenchmarkFunc) ([]gobench.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseSuite(f, bodies)
}

// ParseSuite parses a declarative benchmark-suite document from r. The
// expected shape is:
//
//	<benchmark-suite name="...">
//	  <benchmark name="..." threads="4" iterations="1000"
//	             repetitions="5" min-time="0.5" args="8,64"
//	             complexity="n"></benchmark>
//	</benchmark-suite>
//
// Each <benchmark> element is resolved against a function in bodies keyed
// by its name attribute; an element naming a function absent from bodies
// is reported as an error rather than silently skipped.
func ParseSuite(r io.Reader, bodies map[string]gobench.BenchmarkFunc) ([]gobench.Instance, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var entries []suiteEntry
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "benchmark" {
			entries = append(entries, parseSuiteEntry(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	instances := make([]gobench.Instance, 0, len(entries))
	for _, e := range entries {
		body, ok := bodies[e.name]
		if !ok {
			return nil, fmt.Errorf("discovery: suite file names benchmark %q, no body registered for it", e.name)
		}
		instances = append(instances, gobench.Instance{
			Name:        e.name,
			Body:        body,
			Args:        e.args,
			Threads:     e.threads,
			Iterations:  e.iterations,
			Repetitions: e.repetitions,
			MinTime:     e.minTime,
			Complexity:  parseComplexity(e.complexity),
		})
	}
	return instances, nil
}

func parseSuiteEntry(n *html.Node) suiteEntry {
	e := suiteEntry{threads: 1}
	for _, attr := range n.Attr {
		switch attr.Key {
		case "name":
			e.name = attr.Val
		case "threads":
			if v, err := strconv.Atoi(attr.Val); err == nil {
				e.threads = v
			}
		case "iterations":
			if v, err := strconv.ParseUint(attr.Val, 10, 64); err == nil {
				e.iterations = v
			}
		case "repetitions":
			if v, err := strconv.Atoi(attr.Val); err == nil {
				e.repetitions = v
			}
		case "min-time":
			if v, err := strconv.ParseFloat(attr.Val, 64); err == nil {
				e.minTime = v
			}
		case "args":
			for _, part := range strings.Split(attr.Val, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				if v, err := strconv.ParseInt(part, 10, 64); err == nil {
					e.args = append(e.args, v)
				}
			}
		case "complexity":
			e.complexity = attr.Val
		}
	}
	return e
}

func parseComplexity(s string) gobench.Complexity {
	switch s {
	case "1":
		return gobench.O1
	case "logn":
		return gobench.OLogN
	case "n":
		return gobench.ON
	case "nlogn":
		return gobench.ONLogN
	case "n2":
		return gobench.ON2
	case "n3":
		return gobench.ON3
	case "auto":
		return gobench.OAuto
	default:
		return gobench.ComplexityNone
	}
}
