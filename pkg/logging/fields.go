package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int32(key string, value int32) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Domain field helpers

// Component tags log output with the pipeline stage that produced it
func Component(name string) Field {
	return String("component", name)
}

func NodeID(id int32) Field {
	return Int32("node_id", id)
}

func PartitionID(p int) Field {
	return Int("partition", p)
}

func Partitions(n int) Field {
	return Int("partitions", n)
}

func Edges(n int) Field {
	return Int("hyperedges", n)
}

func Pins(n int) Field {
	return Int("pins", n)
}

func Vertices(n int) Field {
	return Int("vertices", n)
}

func Cuts(n int) Field {
	return Int("cuts", n)
}

func CutEdges(n int) Field {
	return Int("cut_edges", n)
}

func LutSize(k int) Field {
	return Int("lut_size", k)
}

func Session(id string) Field {
	return String("session", id)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}
