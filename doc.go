// Package vrp is a capacitated vehicle-routing optimization core: given a
// depot, a set of customers with demands (and optionally time windows),
// and a homogeneous fleet of capacitated vehicles, its subpackages build,
// improve, and compare route plans that serve every customer while
// respecting capacity and time constraints and approximately minimizing
// total travel distance.
//
// There is no single top-level entry point; callers compose subpackages
// to fit the algorithm family they want:
//
//	model/        — Customer, Vehicle, Route, Solution and their invariants
//	distmatrix/   — dense n×n travel-distance lookup (Euclidean or road-network)
//	evaluator/    — deterministic forward-pass route feasibility and cost
//	constructive/ — nearest-neighbor, Clarke-Wright, sweep, Solomon I1 builders
//	localsearch/  — 2-opt, Or-opt, 3-opt, relocate, exchange route improvement
//	split/        — Prins shortest-path DP splitting a giant tour into routes
//	ga/           — giant-tour genetic algorithm (order crossover, mutation, driver)
//	alns/         — adaptive large neighborhood search (destroy/repair, driver)
//	rng/          — deterministic, seedable random source shared by ga and alns
//	core/         — graph primitives (vertices, weighted edges) underlying dijkstra
//	dijkstra/     — shortest-path search, used by distmatrix.FromRoadNetwork
//
// A typical pipeline builds a distance matrix, constructs an initial
// solution, polishes it with local search, and optionally hands it to the
// GA or ALNS driver for further improvement:
//
//	dm := distmatrix.FromCustomers(customers)
//	initial := constructive.NearestNeighbor(customers, dm, vehicles)
//	problem := alns.NewRoutingALNSProblem(customers, dm, capacity)
//	result := alns.Run(ctx, problem, destroyOps, repairOps, opts, rng.New(seed), logw)
package vrp
