package config

// GameConfig is the root of game.yaml
type GameConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Arena      ArenaConfig      `yaml:"arena"`
	Balls      BallsConfig      `yaml:"balls"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Player     PlayerConfig     `yaml:"player"`
	Collision  CollisionConfig  `yaml:"collision"`
}

type DisplayConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Scale     int    `yaml:"scale"`
	Framerate int    `yaml:"framerate"`
	Title     string `yaml:"title"`
}

type ArenaConfig struct {
	WallThickness float64 `yaml:"wallThickness"`
	ContactSlack  float64 `yaml:"contactSlack"`
}

// BallsConfig covers motion, bounce and split tuning plus the opening ball.
// Diameters and impulses are listed from rank 1 (smallest) to rank 5.
type BallsConfig struct {
	Gravity      float64   `yaml:"gravity"`
	Diameters    []float64 `yaml:"diameters"`
	Impulses     []float64 `yaml:"impulses"`
	BouncePolicy string    `yaml:"bouncePolicy"` // impulse | reflect
	Shape        string    `yaml:"shape"`        // box | circle
	SplitSpeed   float64   `yaml:"splitSpeed"`
	SplitLift    float64   `yaml:"splitLift"`
	Start        BallSpawn `yaml:"start"`
}

type BallSpawn struct {
	Rank int     `yaml:"rank"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	VX   float64 `yaml:"vx"`
	VY   float64 `yaml:"vy"`
}

type ProjectileConfig struct {
	Policy  string  `yaml:"policy"` // single | multi
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Growth  float64 `yaml:"growth"`
	Speed   float64 `yaml:"speed"`
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
}

type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CollisionConfig picks the overlap backend
type CollisionConfig struct {
	Backend  string `yaml:"backend"` // aabb | resolv
	CellSize int    `yaml:"cellSize"`
}
