/*
Package config loads the description of a gradient removal run.

	            +-------------+
	            |   Config    |
	            |  (roots,    |
	            |   rules)    |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Replaces the hardcoded frontend paths with an explicit value
- Picks the parser from the file extension
- Fills defaults for the usual frontend layout (app + components, *.tsx)
- Validates before any file is touched

🔄 Flow:
1. Reads the file
2. Parses format-specific syntax
3. Applies defaults
4. Validates

🔍 Example:

	cfg, err := config.Load(ctx, "degradient.yaml")
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			// show the validation message
		}
		return err
	}

	rules, err := cfg.RuleSet()
*/
package config
