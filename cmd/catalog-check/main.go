// catalog-check validates the embedded idea catalog offline: it fails
// when ids collide across department buckets or a bucket is empty, and
// prints dataset statistics otherwise.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"

	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/service"
)

func main() {
	verbose := flag.Bool("v", false, "print per-idea listing")
	flag.Parse()

	ideas, err := catalog.LoadDataset()
	if err != nil {
		log.Printf("catalog invalid: %v", err)
		os.Exit(1)
	}

	failed := false
	for dept, bucket := range ideas {
		if len(bucket) == 0 {
			log.Printf("department %q has an empty bucket", dept)
			failed = true
		}
		for _, idea := range bucket {
			if idea.Department != dept {
				log.Printf("idea %q is filed under %q but declares department %q", idea.ID, dept, idea.Department)
				failed = true
			}
			if idea.DevelopmentGuide == "" || idea.MvpPlan == "" {
				log.Printf("idea %q is missing guide or mvp plan text", idea.ID)
				failed = true
			}
		}
	}
	if failed {
		os.Exit(1)
	}

	svc := service.NewCatalogService(ideas, rand.New(rand.NewSource(1)))
	stats := svc.Statistics()

	fmt.Printf("catalog ok: %d ideas\n", stats.TotalIdeas)
	depts := make([]string, 0, len(stats.DepartmentCounts))
	for dept := range stats.DepartmentCounts {
		depts = append(depts, dept)
	}
	sort.Strings(depts)
	for _, dept := range depts {
		fmt.Printf("  %-8s %d\n", dept, stats.DepartmentCounts[dept])
		if *verbose {
			for _, idea := range svc.ByDepartment(dept) {
				fmt.Printf("    %s  [%s] %s\n", idea.ID, idea.Difficulty, idea.Title)
			}
		}
	}
}
