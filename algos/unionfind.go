package algos

// DisjointSets is a union-find over comparable keys. Keys are added on first use.
type DisjointSets[K comparable] struct {
	parent map[K]K
	order  []K
}

func NewDisjointSets[K comparable]() *DisjointSets[K] {
	return &DisjointSets[K]{parent: map[K]K{}}
}

func (d *DisjointSets[K]) Add(k K) {
	if _, ok := d.parent[k]; !ok {
		d.parent[k] = k
		d.order = append(d.order, k)
	}
}

func (d *DisjointSets[K]) Find(k K) K {
	d.Add(k)
	root := k
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[k] != root {
		next := d.parent[k]
		d.parent[k] = root
		k = next
	}
	return root
}

func (d *DisjointSets[K]) Union(a, b K) {
	ra, rb := d.Find(a), d.Find(b)
	if ra != rb {
		d.parent[rb] = ra
	}
}

// Groups returns the sets in order of first insertion of their earliest member.
func (d *DisjointSets[K]) Groups() [][]K {
	index := map[K]int{}
	var groups [][]K
	for _, k := range d.order {
		root := d.Find(k)
		i, ok := index[root]
		if !ok {
			i = len(groups)
			index[root] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], k)
	}
	return groups
}
