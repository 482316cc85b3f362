// Package codec converts between SFF documents and their XML wire form.
//
// Parse reads raw XML text into an sff.Document; Serialize writes a
// document back out. Both are pure, synchronous transformations with no
// I/O. The wire schema is the one the original tooling produces:
//
//	<Document>
//	  <Metadata>
//	    <Script/> <App/> <Info/>
//	    <TLLength/> <PRLength/> <CMLength/> <BalloonCount/> <LineCount/>
//	  </Metadata>
//	  <Balloons>
//	    <Balloon type="..."> <TL/>* <PR/>* <Comment/>* <img type="..."/>? </Balloon>*
//	  </Balloons>
//	</Document>
package codec

// Element and attribute names of the SFF wire schema.
const (
	elemDocument     = "Document"
	elemMetadata     = "Metadata"
	elemScript       = "Script"
	elemApp          = "App"
	elemInfo         = "Info"
	elemTLLength     = "TLLength"
	elemPRLength     = "PRLength"
	elemCMLength     = "CMLength"
	elemBalloonCount = "BalloonCount"
	elemLineCount    = "LineCount"
	elemBalloons     = "Balloons"
	elemBalloon      = "Balloon"
	elemTL           = "TL"
	elemPR           = "PR"
	elemComment      = "Comment"
	elemImg          = "img"
	attrType         = "type"
)
