// Package bintree is a small toolbox of algorithms over plain binary trees:
// depths, path sums, value lookups, kinship queries and a flat text codec.
//
// 🚀 What is bintree?
//
//	An in-memory, stack-safe library built around one data model:
//		• Core model: Node{Value, Left, Right} and a Tree holding the root
//		• Traversals: explicit-stack DFS (with Fold) and level-order BFS
//		• Depths: minimum and maximum depth, balance check
//		• Path sums: maximum path sum and the path that achieves it
//		• Lookups: smallest value strictly above x
//		• Kinship: cousins, lowest common ancestor
//		• Codec: pre-order token stream with "#" for absent children
//		• Builders: perfect, complete, chain, random and level-order fixtures
//
// ✨ Why choose bintree?
//
//   - Stack-safe - every walk uses an explicit stack or queue, so a
//     million-node chain is as easy as a balanced tree
//   - Identity-aware - cousins and LCA compare nodes, not values
//   - Predictable errors - sentinel errors per package, wrapped with context
//   - Hookable - OnVisit, OnExit, OnEnqueue and friends on the walkers
//
// Packages:
//
//	core/       - Node, Tree, Clone, Equal, Validate
//	dfs/        - depth-first walker with hooks and the generic Fold
//	bfs/        - breadth-first walker, Levels and PathTo
//	depth/      - MinDepth, MaxDepth, Balanced
//	pathsum/    - MaxPathSum, MaxPath
//	nextlarger/ - NextLarger
//	cousins/    - AreCousins, FindDepthAndParent, Of
//	lca/        - LowestCommonAncestor, LowestCommonAncestorByValue
//	codec/      - Serialize, Deserialize, Encode, Decode
//	builder/    - deterministic tree constructors for tests and demos
//	cmd/bintree - command-line front end over all of the above
//
// Quick ASCII example:
//
//	      1
//	     / \
//	    2   3          serializes to "1 2 # # 3 4 # # 5 # #"
//	       / \
//	      4   5
//
//	go get github.com/katalvlaran/bintree
package bintree
