package partition

import "github.com/limaJavier/grouping/pkg/random"

type Partitioner interface {
	// Divides roster into at most unitCount balanced units trying to keep conflicting students apart.
	// unitCount is clamped to [1, len(roster)]; an empty roster yields an empty partition.
	// It never fails: conflicting students that could not be separated are left for the auditor to report
	Partition(roster []string, unitCount int, conflicts Conflicts) Partition
}

func NewPartitioner(source random.Source) Partitioner {
	return &greedyPartitioner{
		source: source,
	}
}
