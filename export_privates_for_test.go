package bigint

// Test-bridge (white-box) for private carrier kernels.
//
// Purpose:
//   - Expose the unexported signExtend / twoComplement / truncate kernels to
//     bigint_test ONLY, without widening the production API.
//   - The _test.go suffix keeps this file out of production builds.
//
// Maintenance:
//   - If a kernel changes signature, mirror the change here once.

var (
	// SignExtend_TestOnly forwards to the private signExtend kernel.
	SignExtend_TestOnly = signExtend

	// TwoComplement_TestOnly forwards to the private twoComplement kernel.
	TwoComplement_TestOnly = twoComplement

	// Truncate_TestOnly forwards to the private truncate kernel.
	Truncate_TestOnly = truncate

	// ExtWord_TestOnly forwards to the private extWord helper.
	ExtWord_TestOnly = extWord
)
