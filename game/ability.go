package game

import (
	"github.com/meghashyamc/cooldown2d/cooldown"
	"github.com/meghashyamc/cooldown2d/logger"
)

// Ability gates an action behind its own cooldown. The game ticks every
// ability once per frame and asks TryUse before letting the action fire.
type Ability struct {
	name   string
	cd     *cooldown.Cooldown
	uses   int
	logger logger.Logger
}

func NewAbility(name string, cooldownTicks int, onReady func()) *Ability {
	a := &Ability{
		name:   name,
		cd:     cooldown.New(cooldownTicks, onReady),
		logger: logger.New(),
	}

	a.logger.Debug("ability created", "name", name, "cooldownTicks", cooldownTicks)
	return a
}

// Update advances the ability's cooldown by one frame.
func (a *Ability) Update() {
	a.cd.Update()
}

// TryUse fires the ability if it is off cooldown and starts the
// countdown again. Returns whether the ability actually fired.
func (a *Ability) TryUse() bool {
	if !a.cd.IsReady() {
		return false
	}

	a.cd.Start()
	a.uses++
	a.logger.Debug("ability used", "name", a.name, "uses", a.uses, "cooldownTicks", a.cd.Duration())
	return true
}

func (a *Ability) Pause() {
	a.cd.Pause()
}

func (a *Ability) Resume() {
	a.cd.Resume()
}

// ResetCooldown cancels the countdown so the ability is usable again
// immediately, without firing the ready callback.
func (a *Ability) ResetCooldown() {
	a.cd.Reset()
}

func (a *Ability) IsReady() bool {
	return a.cd.IsReady()
}

func (a *Ability) Progress() float64 {
	return a.cd.Progress()
}

func (a *Ability) Remaining() int {
	return a.cd.Remaining()
}

func (a *Ability) Name() string {
	return a.name
}

func (a *Ability) Uses() int {
	return a.uses
}
