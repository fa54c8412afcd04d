// Package dashboard holds the dashboard's view state and the pure transition
// function over it.
//
// Every operator intent is an Action. Reduce takes an Env (id source, clock,
// notification timeout), the current State and an Action, and returns the
// next State plus a list of Effects. The only effect today is
// ScheduleDismiss, which the terminal runtime turns into a one-shot timer
// that later dispatches DismissNotification. A dismissal carrying an old id
// is ignored, so a newer notification is never cleared by an older timer.
//
// Collections are replaced copy-on-write; a State obtained earlier keeps
// observing its own data after later transitions.
package dashboard
