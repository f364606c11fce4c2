/*
Package bootstrap instantiates processing units from an explicit startup
list.

Units are consumers of entities: they query the component store directly
and depend on the registry and dispatcher having already populated it.
Each unit type is registered once as a factory; a YAML configuration names
which units actually run and in what order:

	units:
	  - movement
	  - health-regen

	runner := bootstrap.NewRunner()
	_ = runner.RegisterFactory("movement", func() bootstrap.Unit { return &Movement{} })
	_ = runner.RegisterFactory("health-regen", func() bootstrap.Unit { return &HealthRegen{} })

	cfg, _ := bootstrap.LoadConfig("units.yaml")
	err := runner.Run(*cfg, env)

Run creates exactly one instance per listed name; repeats collapse.
Relative ordering against baker registration is not load-bearing, since
units reach the registry lazily through the Env they receive.
*/
package bootstrap
