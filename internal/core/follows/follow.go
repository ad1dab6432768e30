package follows

// Follow is a directional edge between two author identities. A mutual
// ("friend") relationship is represented by a pair of edges with
// Bidirectional set, mirrored when an incoming request is accepted.
type Follow struct {
	Follower      string `json:"follower" db:"follower"`
	Followee      string `json:"followee" db:"followee"`
	Bidirectional bool   `json:"bidirectional" db:"bidirectional"`
	Rejected      bool   `json:"rejected" db:"rejected"`
}
