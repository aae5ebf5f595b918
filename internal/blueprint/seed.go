package blueprint

import "log/slog"

// SeedDemo loads the demo records used by the coursework deployment.
// It only runs against an empty store so a restart with pre-loaded state
// (tests, future persistence) is not clobbered.
func SeedDemo(store *Store, logger *slog.Logger) {
	if store.Count() > 0 {
		logger.Info("store not empty, skipping demo seed")
		return
	}

	store.Put(Blueprint{
		ID:     "b1",
		Name:   "Casa de campo",
		Author: "student",
		Points: "[(0,0), (10,10), (20,0)]",
	})
	store.Put(Blueprint{
		ID:     "b2",
		Name:   "Edificio urbano",
		Author: "student",
		Points: "[(0,0), (5,15), (10,0), (15,10)]",
	})

	logger.Info("demo blueprints seeded", "count", store.Count())
}
