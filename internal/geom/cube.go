package geom

// CubeEdges lists the 12 edges of a cube as index pairs into the vertex
// slice returned by CubeVertices: back face, front face, then the four
// connectors between them.
var CubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// CubeVertices returns the 8 corners of an axis-aligned cube centered at the
// origin with half-extent size.
func CubeVertices(size float64) []Vec3 {
	s := size
	return []Vec3{
		{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s},
		{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s},
	}
}
