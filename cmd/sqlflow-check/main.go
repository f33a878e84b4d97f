// sqlflow-check runs every reference solution in the lesson catalog against
// its lesson database. A solution that fails to execute is a content bug that
// would surface to learners as an orchestrator fault, so this runs before
// lesson content ships.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"sqlflow/internal/lesson"
	"sqlflow/internal/validate"
)

func main() {
	lessonsFile := flag.String("lessons", "lesson-data/lessons.json", "path to the lesson catalog JSON")
	dataDir := flag.String("data-dir", "lesson-data", "directory holding lesson_<id>.db files")
	flag.Parse()

	catalog, err := lesson.Load(*lessonsFile)
	if err != nil {
		log.Fatalf("load lesson catalog: %v", err)
	}

	ctx := context.Background()
	checked := 0
	failures := 0

	for _, item := range catalog.All() {
		db, err := validate.OpenLessonDB(*dataDir, item.ID, true)
		if err != nil {
			fmt.Printf("FAIL lesson %s: %v\n", item.ID, err)
			failures += countSolutions(item)
			continue
		}

		for _, exercise := range item.Practice {
			checked++
			if !checkSolution(ctx, db, item.ID, exercise.ID, exercise.Solution) {
				failures++
			}
		}
		for _, challenge := range item.Challenges {
			for _, step := range challenge.Steps {
				checked++
				if !checkSolution(ctx, db, item.ID, step.StepID, step.Solution) {
					failures++
				}
			}
		}

		_ = db.Close()
	}

	if failures > 0 {
		fmt.Printf("\n%d of %d reference solution(s) broken\n", failures, checked)
		os.Exit(1)
	}
	fmt.Printf("all %d reference solutions OK\n", checked)
}

func checkSolution(ctx context.Context, db *sql.DB, lessonID, exerciseID, solution string) bool {
	if _, err := validate.Execute(ctx, db, solution); err != nil {
		fmt.Printf("FAIL lesson %s exercise %s: %v\n", lessonID, exerciseID, err)
		return false
	}
	return true
}

func countSolutions(item lesson.Lesson) int {
	count := len(item.Practice)
	for _, challenge := range item.Challenges {
		count += len(challenge.Steps)
	}
	return count
}
