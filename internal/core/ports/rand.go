package ports

// Rand is the random source used for random record selection. It is an
// interface so tests can supply a deterministic stub; production uses
// math/rand. Intn must panic-free handle any n > 0, like rand.Intn.
type Rand interface {
	Intn(n int) int
}
