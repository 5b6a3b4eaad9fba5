package maze

import "github.com/go-gl/mathgl/mgl32"

func tile(name string, center, size mgl32.Vec3) Box {
	return Box{Name: name, Center: center, Size: size, Material: MaterialTile}
}

func concrete(name string, center, size mgl32.Vec3) Box {
	return Box{Name: name, Center: center, Size: size, Material: MaterialConcrete}
}

// Default returns the built-in 100x100 maze. The player starts at the west
// edge and has to find the yellow box near the east wall.
func Default() *Layout {
	return &Layout{
		Name:  "default",
		Spawn: mgl32.Vec3{-45, 2, 0},
		Win: WinZone{
			Center: mgl32.Vec3{45, 2, 0},
			Radius: 2,
			Marker: Box{Name: "goal", Center: mgl32.Vec3{45, 2, 0}, Size: mgl32.Vec3{2, 2, 2}, Material: MaterialGoal},
		},
		Floor: Box{Name: "floor", Size: mgl32.Vec3{100, 0, 100}, Material: MaterialCheckerboard},
		Walls: []Box{
			tile("inner-00", mgl32.Vec3{-32, 5, -21}, mgl32.Vec3{16, 10, 2}),
			tile("inner-01", mgl32.Vec3{-23, 5, 7}, mgl32.Vec3{2, 10, 58}),
			tile("inner-02", mgl32.Vec3{8, 5, 35}, mgl32.Vec3{86, 10, 2}),
			tile("inner-03", mgl32.Vec3{-32, 5, 7}, mgl32.Vec3{16, 10, 2}),
			tile("inner-04", mgl32.Vec3{-42, 5, 21}, mgl32.Vec3{16, 10, 2}),
			tile("inner-05", mgl32.Vec3{-42, 5, -7}, mgl32.Vec3{16, 10, 2}),
			tile("inner-06", mgl32.Vec3{-42, 5, -36}, mgl32.Vec3{16, 10, 2}),
			tile("inner-07", mgl32.Vec3{14, 5, 21}, mgl32.Vec3{43, 10, 2}),
			tile("inner-08", mgl32.Vec3{1, 5, 7}, mgl32.Vec3{16, 10, 2}),
			tile("inner-09", mgl32.Vec3{18, 5, -36}, mgl32.Vec3{32, 10, 2}),
			tile("inner-10", mgl32.Vec3{42, 5, -22}, mgl32.Vec3{16, 10, 2}),
			tile("inner-11", mgl32.Vec3{34, 5, -7}, mgl32.Vec3{32, 10, 2}),
			tile("inner-12", mgl32.Vec3{42, 5, 7}, mgl32.Vec3{16, 10, 2}),
			tile("inner-13", mgl32.Vec3{19, 5, -9}, mgl32.Vec3{2, 10, 32}),
			tile("inner-14", mgl32.Vec3{3, 5, -28}, mgl32.Vec3{2, 10, 44}),
			tile("inner-15", mgl32.Vec3{-8, 5, 0}, mgl32.Vec3{2, 10, 44}),
			tile("inner-16", mgl32.Vec3{-8, 5, -42}, mgl32.Vec3{2, 10, 16}),
			tile("inner-17", mgl32.Vec3{35, 5, 28}, mgl32.Vec3{2, 10, 16}),

			// outer walls sink below the floor so only 10 units show
			concrete("outer-north", mgl32.Vec3{0, -40, -50}, mgl32.Vec3{100, 100, 4}),
			concrete("outer-south", mgl32.Vec3{0, -40, 50}, mgl32.Vec3{100, 100, 4}),
			concrete("outer-east", mgl32.Vec3{50, -40, 0}, mgl32.Vec3{4, 100, 100}),
			concrete("outer-west", mgl32.Vec3{-50, -40, 0}, mgl32.Vec3{4, 100, 100}),
		},
	}
}
