package object

// AsteroidSpawner creates waves of edge-spawned asteroids for a screen.
type AsteroidSpawner struct {
	screen Screen
	rng    Rand
}

// NewAsteroidSpawner creates a spawner bound to a screen and randomness source.
func NewAsteroidSpawner(screen Screen, rng Rand) *AsteroidSpawner {
	return &AsteroidSpawner{screen: screen, rng: rng}
}

// Wave returns count new random asteroids placed near the screen edges.
func (s *AsteroidSpawner) Wave(count int) []*Asteroid {
	if count < 0 {
		count = 0
	}
	wave := make([]*Asteroid, 0, count)
	for i := 0; i < count; i++ {
		wave = append(wave, NewAsteroidAtEdge(s.screen, s.rng))
	}
	return wave
}

// WaveSize returns the number of asteroids spawned when level starts.
// Level 1 uses the opening wave; later levels spawn 4 + level.
func WaveSize(level int) int {
	if level <= 1 {
		return OpeningWave
	}
	return 4 + level
}

// OpeningWave is the asteroid count of a fresh round.
const OpeningWave = 8
