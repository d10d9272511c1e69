/*
	view frustum culling

	ViewFrustum is built from a combined projection and view matrix and
	keeps six outward facing planes, so a point in Front of any plane is
	outside. Corners, an axis aligned bounding box and a bounding sphere
	are derived from the planes and updated together.

	SphereTree groups bounding spheres of scene items so that Visible can
	reject whole branches against a frustum.

	TODO:
		* cache the plane normal signs used by ClassifyBoundary
*/

package scene
