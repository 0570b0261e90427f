/*
Package operation ties discovery, planning, and execution together into
schedulable units of work, one per directory.

	+-------------+
	|  Operation  |  plan one directory, optionally apply it
	+------+------+
	       |
	+------+------+
	|   Runner    |  sequential, or errgroup across directories
	+-------------+

🎯 Purpose:
- Wraps one directory's plan-preview-export-apply pipeline as an Operation
- Schedules operations sequentially or concurrently (--async)

📝 Design Philosophy:
Directories are disjoint plans, so fanning out across them never violates
the sequential-planning rule that holds within a single directory: each
operation builds with its own sequence counter and touches only its own
tree.
*/
package operation
