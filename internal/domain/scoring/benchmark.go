package scoring

import "github.com/bewertigo/bewertigo/internal/domain"

// LookupBenchmark resolves the industry average for category. Unknown
// categories get the table's default entry. The category and city labels
// are echoed back as supplied.
func LookupBenchmark(table domain.BenchmarkTable, category, city string) domain.Benchmark {
	avg, _ := table.Lookup(category)
	return domain.Benchmark{
		AverageScore: avg,
		Category:     category,
		City:         city,
		Source:       domain.BenchmarkSourceStatic,
	}
}
