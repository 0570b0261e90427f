/*
Package plan computes deterministic rename plans: ordered, reviewable, and
fully resolved before anything on disk moves.

	 [discovered files]
	         |
	   +-----+-----+
	   |   Order   |  stable sort, listing-order ties
	   +-----+-----+
	         |
	   +-----+-----+
	   |  Builder  |  render template, validate names
	   +-----+-----+
	         |
	   +-----+------+
	   | Conflicts  |  fail | skip | suffix
	   +-----+------+
	         |
	      [Plan]

🎯 Purpose:
- Orders rename candidates deterministically
- Renders one proposed name per file through the template engine
- Rejects names the target filesystem cannot accept
- Resolves collisions under one of three policies

🔄 Flow:
1. Order sorts by name, mtime, or ctime; ties keep listing order
2. Each file gets a context and one sequence frame, in plan order
3. Rendered names are validated and the source extension re-attached
4. Collisions are resolved against the batch and the rest of the directory

⚡ Key Responsibilities:
- Determinism: the same input always produces the same plan
- Purity: planning reads nothing and writes nothing on disk
- Sequence discipline: one counter value per entry that references it
- Collision safety: non-skipped proposed names are pairwise distinct

📝 Design Philosophy:
A plan is a value. Building it cannot move files, and applying it is
someone else's job (pkg/execute). Every fatal condition - bad template,
bad enum, illegal rendered name, fail-policy collision - surfaces before
the first rename, so a failed plan never leaves a directory half-renamed.

🔍 Example:

	b, err := plan.NewBuilder(plan.Options{
		Template: "trip_{seq}{ext}",
		SortKey:  plan.SortByMTime,
		Conflict: plan.ConflictSuffix,
		SeqStart: 1, SeqStep: 1, SeqPad: 4,
	})
	if err != nil {
		return err
	}
	p, err := b.Build(ctx, plan.Input{Dir: dir, Files: files, Existing: names})
*/
package plan
