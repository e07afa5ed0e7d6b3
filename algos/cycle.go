package algos

// FindCycle walks the graph from every key in order and returns the first cycle
// found as a path whose last element repeats the first one, or nil.
func FindCycle[K comparable](keys []K, edges func(K) []K) (cycle []K) {
	visited := map[K]bool{}
	recStack := map[K]bool{}
	var path []K

	var dfs func(K) bool
	dfs = func(k K) bool {
		if recStack[k] {
			for i, p := range path {
				if p == k {
					cycle = append(append(cycle, path[i:]...), k)
					break
				}
			}
			return true
		}
		if visited[k] {
			return false
		}

		visited[k] = true
		recStack[k] = true
		path = append(path, k)

		for _, dep := range edges(k) {
			if dfs(dep) {
				return true
			}
		}

		path = path[:len(path)-1]
		recStack[k] = false
		return false
	}

	for _, k := range keys {
		if dfs(k) {
			return
		}
	}

	return nil
}
