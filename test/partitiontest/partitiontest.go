// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package partitiontest

import (
	"hash/fnv"
	"os"
	"strconv"
	"testing"
)

// PartitionTest skips the test if it is not the current partition's turn to
// run it. Partitioning is driven by the PARTITION_TOTAL and PARTITION_ID
// environment variables: the test name is hashed and assigned to one of
// PARTITION_TOTAL buckets. With no environment configured, every test runs.
func PartitionTest(t testing.TB) {
	pt, found := os.LookupEnv("PARTITION_TOTAL")
	if !found {
		return
	}
	partitions, err := strconv.Atoi(pt)
	if err != nil || partitions <= 1 {
		return
	}

	pid := os.Getenv("PARTITION_ID")
	partitionID, err := strconv.Atoi(pid)
	if err != nil {
		partitionID = 0
	}

	name := t.Name()
	h := fnv.New32a()
	h.Write([]byte(name))
	if int(h.Sum32())%partitions != partitionID {
		t.Skipf("skipping %s due to partitioning: assigned to partition %d", name, int(h.Sum32())%partitions)
	}
}
