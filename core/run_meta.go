package core

// RunMeta records how a result collection was produced, enough to reproduce
// the run byte-for-byte.
type RunMeta struct {
	Id         int64  `json:"id"`
	Statistic  string `json:"statistic"`
	Rule       string `json:"rule"`
	Seed       int64  `json:"seed"`
	Iterations int    `json:"iterations"`
	CreatedAt  int64  `json:"created_at"`
}
