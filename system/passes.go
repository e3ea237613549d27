package system

import (
	"github.com/milk9111/pollo/component"
	"github.com/milk9111/pollo/obj"
)

// collect resolves one collision pass. Order matters: coins, bottles,
// projectiles, then character against enemies.
func (w *World) collect() {
	w.collectCoins()
	w.collectBottles()
	w.resolveProjectiles()
	w.resolveContacts()
}

func (w *World) collectCoins() {
	c := w.Character
	w.Level.Coins = obj.Collect(w.Level.Coins, c.Box, func(coin *obj.Coin) bool {
		w.coins++
		w.cue(w.tuning.World.CoinSound)
		w.CoinBar.SetCount(w.coins)
		w.emit(component.EventCoinCollected, "coin", w.coins, coin.X, coin.Y)
		return true
	})
}

func (w *World) collectBottles() {
	c := w.Character
	capacity := w.tuning.World.BottleCapacity
	w.Level.Bottles = obj.Collect(w.Level.Bottles, c.Box, func(b *obj.Bottle) bool {
		if w.bottles >= capacity {
			return false
		}
		b.Collect()
		w.bottles++
		w.refreshBottleBar()
		w.emit(component.EventBottleCollected, "bottle", w.bottles, b.X, b.Y)
		return true
	})
}

func (w *World) refreshBottleBar() {
	w.BottleBar.SetPercentage(component.Percent(float64(w.bottles), float64(w.tuning.World.BottleCapacity)))
}

// resolveProjectiles tests every bottle still in flight against every live
// enemy. A bottle that hits anything, or reaches the ground band, splashes.
func (w *World) resolveProjectiles() {
	for _, p := range w.Projectiles {
		if !p.InFlight() {
			continue
		}
		hit := false
		for _, e := range w.Level.Enemies {
			body := e.Base()
			if body.Dead() || !p.Collides(body.Box) {
				continue
			}
			e.Hit()
			hit = true
			w.emit(component.EventEnemyHit, e.Kind(), body.Energy.Current, body.X, body.Y)
		}
		if hit || p.InGroundBand() {
			p.Splash()
			w.emit(component.EventBottleSplashed, "bottle", 0, p.X, p.Y)
		}
	}
}

// resolveContacts handles stomps and contact damage.
func (w *World) resolveContacts() {
	c := w.Character
	if c.Dead() {
		return
	}
	ws := w.tuning.World
	for _, e := range w.Level.Enemies {
		body := e.Base()
		if body.Dead() || !component.Overlaps(c.Box, body.Box) {
			continue
		}

		if c.Airborne() && !e.Boss() {
			e.Kill()
			c.Y = body.Y - c.H
			c.Vel.Y = ws.StompRebound
			w.scope.After(ws.StompReboundFor, func() {
				c.Vel.Y = 0
			})
			w.emit(component.EventEnemyStomped, e.Kind(), 0, body.X, body.Y)
			continue
		}

		if c.IsHurt() {
			continue
		}
		damage := ws.ContactDamage
		if e.Boss() {
			damage = ws.BossContactDmg
		}
		if !c.Hit(damage) {
			continue
		}
		w.cue(ws.HurtSound)
		w.HealthBar.SetPercentage(c.Energy.Percentage())
		w.Camera.StartShake(6, 12)
		w.emit(component.EventCharacterHurt, e.Kind(), damage, c.X, c.Y)
		if c.Dead() {
			w.Lose()
			return
		}
	}
}

// run is the coarse pass: throwing, mute sync, boss proximity and music.
func (w *World) run() {
	keys := w.keyboard.Keys()
	if keys.Throw && w.bottles > 0 {
		w.throw()
	}
	w.syncMute(keys.Mute)
	w.bossProximity()
	w.music()
}

func (w *World) throw() {
	c := w.Character
	if c.Dead() {
		return
	}
	spec := w.tuning.Throwable
	p := obj.NewThrowable(w, spec, w.tuning.World.Gravity, c.X+spec.SpawnDX, c.Y+spec.SpawnDY, c.FacingLeft)
	p.OnRemoved = w.removeProjectile
	w.Projectiles = append(w.Projectiles, p)

	w.bottles--
	w.refreshBottleBar()
	w.cue(w.tuning.World.ThrowSound)
	w.emit(component.EventBottleThrown, "bottle", w.bottles, p.X, p.Y)
}

// removeProjectile drops p from the active list. Unknown projectiles are
// ignored.
func (w *World) removeProjectile(p *obj.Throwable) {
	for i, q := range w.Projectiles {
		if q == p {
			copy(w.Projectiles[i:], w.Projectiles[i+1:])
			w.Projectiles[len(w.Projectiles)-1] = nil
			w.Projectiles = w.Projectiles[:len(w.Projectiles)-1]
			return
		}
	}
}

func (w *World) syncMute(m bool) {
	if m == w.muted {
		return
	}
	w.muted = m
	if m {
		w.sound.Mute()
		w.bossMusic = false
		return
	}
	w.sound.Unmute()
}

func (w *World) music() {
	music := w.tuning.World.Music
	if w.bossMusic || w.Muted() {
		w.sound.Pause(music.Name)
		return
	}
	if !w.sound.Playing(music.Name) {
		w.sound.Play(music.Name, music.Volume)
	}
}

func (w *World) bossNear() bool {
	return w.Endboss.X-w.Character.X < w.tuning.World.BossProximity
}

func (w *World) bossProximity() {
	if !w.bossNear() || w.Endboss.Dead() {
		if w.bossMusic {
			w.stopBossMusic()
		}
		return
	}
	if w.bossMusic || w.Muted() {
		return
	}
	w.sound.Pause(w.tuning.World.Music.Name)
	w.sound.Play(w.tuning.World.BossMusic.Name, w.tuning.World.BossMusic.Volume)
	w.bossMusic = true
}

// checkEnd starts the boss death if its energy ran out and loses the game
// if the character's did.
func (w *World) checkEnd() {
	if w.Endboss.Dead() {
		w.Endboss.BeginDeath()
		return
	}
	if w.Character.Dead() {
		w.Lose()
	}
}

func (w *World) refreshHUD() {
	w.CoinBar.SetCount(w.coins)
	w.HealthBar.SetPercentage(w.Character.Energy.Percentage())
	w.BossBar.Visible = w.bossNear()
	w.BossBar.SetPercentage(component.Percent(float64(w.Endboss.Energy.Current), w.tuning.World.BossBarMax))
}
