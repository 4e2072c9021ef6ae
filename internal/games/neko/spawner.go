package neko

import "github.com/vovakirdan/neko-runner/internal/config"

// Spawner runs the three spawn countdowns and places new entities just
// beyond the right edge of the field.
type Spawner struct {
	obstacleTimer float64
	heartTimer    float64
	powerUpTimer  float64

	cfg        *config.NekoConfig
	difficulty *config.DifficultyManager
}

// NewSpawner creates a spawner bound to cfg and a difficulty policy.
func NewSpawner(cfg *config.NekoConfig, difficulty *config.DifficultyManager) *Spawner {
	return &Spawner{cfg: cfg, difficulty: difficulty}
}

// Reset arms the timers for a fresh run: the first obstacle and heart
// arrive immediately, the first power-up after a full interval.
func (s *Spawner) Reset(rng *Random) {
	s.obstacleTimer = 0
	s.heartTimer = 0
	s.powerUpTimer = s.nextPowerUp(rng)
}

// Reseed restarts every timer with a fresh interval, giving the player a
// clear stretch after the field has been wiped.
func (s *Spawner) Reseed(rng *Random, score int) {
	s.obstacleTimer = s.nextObstacle(rng, s.difficulty.Plan(score))
	s.heartTimer = s.nextHeart(rng)
	s.powerUpTimer = s.nextPowerUp(rng)
}

// Update counts every timer down by one tick and spawns what expired.
func (s *Spawner) Update(rng *Random, ents *Entities, score int) {
	s.obstacleTimer--
	if s.obstacleTimer <= 0 {
		plan := s.difficulty.Plan(score)
		s.spawnObstacles(rng, ents, plan)
		s.obstacleTimer = s.nextObstacle(rng, plan)
	}

	s.heartTimer--
	if s.heartTimer <= 0 {
		ents.AddHeart(s.item(rng, s.cfg.Spawn.HeartWidth, s.cfg.Spawn.HeartHeight))
		s.heartTimer = s.nextHeart(rng)
	}

	s.powerUpTimer--
	if s.powerUpTimer <= 0 {
		ents.AddPowerUp(s.item(rng, s.cfg.Spawn.PowerUpSize, s.cfg.Spawn.PowerUpSize))
		s.powerUpTimer = s.nextPowerUp(rng)
	}
}

// spawnObstacles places a lead obstacle and rolls for up to two extras
// trailing it, each smaller than the last.
func (s *Spawner) spawnObstacles(rng *Random, ents *Entities, plan config.StackPlan) {
	sp := s.cfg.Spawn
	size := rng.Range(sp.ObstacleMinSize, sp.ObstacleMinSize+sp.ObstacleSizeSpread)
	x := s.spawnX()
	ents.AddObstacle(s.obstacle(x, size))

	if !rng.Chance(plan.FirstChance) {
		return
	}
	x += size + rng.Range(plan.OffsetMin, plan.OffsetMax)
	size *= rng.Range(plan.ScaleMin, plan.ScaleMax)
	ents.AddObstacle(s.obstacle(x, size))

	if !rng.Chance(plan.SecondChance) {
		return
	}
	x += size + rng.Range(plan.OffsetMin, plan.OffsetMax)
	size *= rng.Range(plan.ScaleMin, plan.ScaleMax)
	ents.AddObstacle(s.obstacle(x, size))
}

// obstacle builds a square obstacle resting on the floor.
func (s *Spawner) obstacle(x, size float64) Obstacle {
	floor := s.cfg.GroundY() + s.cfg.Player.Height
	return Obstacle{X: x, Y: floor - size, W: size, H: size}
}

func (s *Spawner) item(rng *Random, w, h float64) Item {
	sp := s.cfg.Spawn
	lift := rng.Range(sp.ItemMinLift, sp.ItemMinLift+sp.ItemLiftSpread)
	return Item{X: s.spawnX(), Y: s.cfg.GroundY() - lift, W: w, H: h}
}

func (s *Spawner) spawnX() float64 {
	return s.cfg.Field.Width + s.cfg.Field.SpawnMargin
}

func (s *Spawner) nextObstacle(rng *Random, plan config.StackPlan) float64 {
	sp := s.cfg.Spawn
	return rng.Range(sp.ObstacleInterval, sp.ObstacleInterval+sp.ObstacleSpread) * plan.IntervalScale
}

func (s *Spawner) nextHeart(rng *Random) float64 {
	sp := s.cfg.Spawn
	return rng.Range(sp.HeartInterval, sp.HeartInterval+sp.HeartSpread)
}

func (s *Spawner) nextPowerUp(rng *Random) float64 {
	sp := s.cfg.Spawn
	return rng.Range(sp.PowerUpInterval, sp.PowerUpInterval+sp.PowerUpSpread)
}
