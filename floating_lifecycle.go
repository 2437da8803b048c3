package floating

import "github.com/grindlemire/go-floating/internal/debug"

// SetEnabled turns the engine on or off. Disabling synchronously releases
// every observer and publishes the sentinel.
func (f *Floating) SetEnabled(enabled bool) {
	f.opts.Enabled = enabled
	f.reconcile()
}

// SetOptions applies opts on top of the current options and restarts the
// scheduler so new observers and settle passes take effect.
func (f *Floating) SetOptions(opts ...Option) {
	o := f.opts
	for _, opt := range opts {
		opt(&o)
	}
	f.opts = o.sanitize()
	f.reconcile()
}

// SetVirtualReference replaces the virtual reference rect. Pass nil to go
// back to the anchor element. Edge-only rects are accepted as in
// WithVirtualReference. Moving an existing virtual reference only
// recomputes; it doesn't restart the settle passes.
func (f *Floating) SetVirtualReference(r *Rect) {
	hadVirtual := f.opts.VirtualReference != nil
	if r != nil {
		v := r.Normalize()
		r = &v
	}
	f.opts.VirtualReference = r

	if f.active && hadVirtual && r != nil {
		f.compute()
		return
	}
	f.reconcile()
}

// Close stops positioning for good: observers and ref subscriptions are
// released and the sentinel is published.
func (f *Floating) Close() {
	if f.closed {
		return
	}
	f.closed = true
	for _, cancel := range f.refCancels {
		cancel()
	}
	f.refCancels = nil
	f.reconcile()
	debug.With("close", "id", f.id)
}

// canActivate reports whether there is something to position.
func (f *Floating) canActivate() bool {
	if f.closed || !f.opts.Enabled {
		return false
	}
	if f.floating.El() == nil {
		return false
	}
	return f.opts.VirtualReference != nil || f.anchor.El() != nil
}

// reconcile moves the scheduler to the state the current options and refs
// call for. An active scheduler is restarted so it observes the current
// elements.
func (f *Floating) reconcile() {
	if f.active {
		f.deactivate()
	}
	if !f.canActivate() {
		f.setState(StateInactive)
		f.publishHidden()
		return
	}
	f.activate()
}

// activate runs the initial pass and, with auto-update, subscribes to every
// change source and starts the settle passes.
func (f *Floating) activate() {
	f.active = true
	f.gen++
	gen := f.gen
	f.stop = make(chan struct{})

	f.compute()
	if !f.opts.AutoUpdate {
		f.setState(StateSteady)
		return
	}
	f.setState(StateSettling)

	recompute := f.guard(gen, f.compute)
	anchorEl := f.anchor.El()
	if f.opts.VirtualReference == nil && anchorEl != nil {
		f.observe(anchorEl, recompute)
	}
	f.observe(f.floating.El(), recompute)

	capture := f.opts.CaptureScroll
	f.cancels = append(f.cancels, f.host.OnViewport(func(ev ViewportEvent) {
		if ev.Kind == ViewportScroll && ev.Source != nil && !capture {
			return
		}
		recompute()
	}))

	containers := f.opts.ScrollContainers
	if containers == nil && f.opts.VirtualReference == nil {
		containers = FindScrollAncestors(anchorEl)
	}
	for _, c := range containers {
		if obs, ok := c.(Observable); ok {
			f.cancels = append(f.cancels, obs.OnScroll(recompute))
		}
	}

	settle := &settleWatcher{
		clock:    f.opts.Clock,
		interval: f.opts.SettleInterval,
		ticks:    f.opts.SettleTicks,
		onTick: func(last bool) {
			if f.gen != gen {
				return
			}
			f.compute()
			if last {
				f.setState(StateSteady)
			}
		},
	}
	settle.Start(f.host.QueueUpdate, f.stop)

	debug.With("activate", "id", f.id, "containers", len(containers), "settleTicks", f.opts.SettleTicks)
}

// observe subscribes to size changes of el, polling when el can't report them.
func (f *Floating) observe(el Element, fn func()) {
	if el == nil {
		return
	}
	if obs, ok := el.(Observable); ok {
		f.cancels = append(f.cancels, obs.OnResize(fn))
		return
	}
	poll := &pollWatcher{
		clock:    f.opts.Clock,
		interval: f.opts.PollInterval,
		el:       el,
		onChange: fn,
	}
	poll.Start(f.host.QueueUpdate, f.stop)
}

// guard wraps fn so it does nothing once generation gen has been deactivated.
func (f *Floating) guard(gen uint64, fn func()) func() {
	return func() {
		if f.gen != gen || !f.active {
			return
		}
		fn()
	}
}

// deactivate releases every observer and stops the watchers. Ticks already
// queued on the host are dropped by the generation check.
func (f *Floating) deactivate() {
	if !f.active {
		return
	}
	f.active = false
	f.gen++
	close(f.stop)
	for _, cancel := range f.cancels {
		cancel()
	}
	f.cancels = nil
	debug.With("deactivate", "id", f.id)
}
