package web

const pageCSS = `
body{margin:0;font-family:system-ui,sans-serif;background:#f9fafb;color:#111827}
header{display:flex;align-items:center;gap:.5rem;padding:1rem 2rem;background:#fff;border-bottom:1px solid #e5e7eb}
.dots i{display:inline-block;width:.75rem;height:.75rem;border-radius:50%;margin-right:.3rem}
.dot-teal{background:#2dd4bf}.dot-indigo{background:#6366f1}.dot-purple{background:#a855f7}
#confetti{position:fixed;inset:0;width:100%;height:100%;pointer-events:none;z-index:100}
h1{font-size:1.2rem;font-weight:500}h1 b{color:#4f46e5}
main{display:flex;flex-direction:column;align-items:center;padding:1rem;gap:2rem}
.card{background:#fff;padding:2rem;border-radius:1.5rem;box-shadow:0 10px 25px rgba(0,0,0,.08);max-width:32rem;width:100%;text-align:center}
.step{display:none}
body[data-step=qr] #step-qr,body[data-step=input] #step-input,body[data-step=result] #step-result{display:block}
.qr{width:20rem;height:20rem;object-fit:contain}
button{padding:.75rem 1.5rem;border:0;border-radius:999px;background:#4f46e5;color:#fff;font-weight:600;cursor:pointer}
input{width:100%;font-size:1.25rem;text-align:center;padding:1rem;border:2px solid #e5e7eb;border-radius:.75rem;margin:1rem 0;box-sizing:border-box}
blockquote{font-size:1.4rem;font-style:italic}.error{color:#dc2626}.tag{color:#9ca3af;text-transform:uppercase;letter-spacing:.2em}
#studio{max-width:64rem;width:100%}.designs,.previews{display:grid;grid-template-columns:repeat(auto-fit,minmax(16rem,1fr));gap:1.5rem}
.design{background:#fff;color:#111827;border-radius:1rem;text-align:left;border:2px solid transparent}
.design.selected{border-color:#3b82f6;background:#eff6ff}
.frame{aspect-ratio:1;background:#fff;border:1px solid #e5e7eb;border-radius:.75rem;display:flex;align-items:center;justify-content:center;overflow:hidden}
.frame img{width:100%;height:100%;object-fit:cover}
`

const pageJS = `
(function(){
  var body=document.body, session=null, poll=null;
  function go(step){ body.dataset.step=step; }
  function post(url,data){ return fetch(url,{method:'POST',headers:{'Content-Type':'application/json'},body:data?JSON.stringify(data):'{}'}).then(function(r){ return r.json().then(function(j){ if(!r.ok) throw new Error(j.error||r.statusText); return j; }); }); }
  var audio=null, clickCue=null;
  try{ clickCue=JSON.parse(document.getElementById('click-cue').textContent); }catch(e){}
  function play(cue){
    if(!cue||!cue.tones) return;
    var AC=window.AudioContext||window.webkitAudioContext; if(!AC) return;
    if(!audio) audio=new AC();
    var ctx=audio, now=ctx.currentTime;
    cue.tones.forEach(function(t){
      var o=ctx.createOscillator(), g=ctx.createGain(), s=now+t.offset_ms/1000, e=s+t.duration_ms/1000;
      o.type=t.wave; o.frequency.setValueAtTime(t.start_hz,s);
      if(t.end_hz!==t.start_hz) o.frequency.exponentialRampToValueAtTime(t.end_hz,e);
      g.gain.setValueAtTime(t.gain,s); g.gain.exponentialRampToValueAtTime(0.001,e);
      o.connect(g); g.connect(ctx.destination); o.start(s); o.stop(e);
    });
  }
  document.addEventListener('click',function(ev){ if(ev.target.closest&&ev.target.closest('button')) play(clickCue); });
  var canvas=document.getElementById('confetti'), pieces=[], drawing=false;
  function burst(n,colors){
    var w=canvas.width=window.innerWidth, h=canvas.height=window.innerHeight;
    [[0.1,0.3],[0.7,0.9]].forEach(function(r){
      var ox=(r[0]+Math.random()*(r[1]-r[0]))*w, oy=(Math.random()-0.2)*h;
      for(var i=0;i<n;i++){
        var a=Math.random()*Math.PI*2, v=4+Math.random()*8;
        pieces.push({x:ox,y:oy,vx:Math.cos(a)*v,vy:Math.sin(a)*v,life:60+Math.random()*30,color:colors[i%colors.length],size:4+Math.random()*4});
      }
    });
    if(!drawing){ drawing=true; requestAnimationFrame(draw); }
  }
  function draw(){
    var g=canvas.getContext('2d'); g.clearRect(0,0,canvas.width,canvas.height);
    pieces=pieces.filter(function(p){ return p.life>0; });
    pieces.forEach(function(p){
      p.x+=p.vx; p.y+=p.vy; p.vy+=0.3; p.vx*=0.97; p.life--;
      g.globalAlpha=Math.min(1,p.life/30); g.fillStyle=p.color; g.fillRect(p.x,p.y,p.size,p.size);
    });
    g.globalAlpha=1;
    if(pieces.length){ requestAnimationFrame(draw); } else { drawing=false; }
  }
  function celebrate(c){
    if(!c) return;
    play(c.sound);
    var cf=c.confetti||{}, colors=(cf.colors&&cf.colors.length)?cf.colors:['#6366f1'];
    (cf.bursts||[]).forEach(function(b){ setTimeout(function(){ burst(b.particles,colors); },b.at_ms); });
  }
  document.querySelectorAll('[data-goto]').forEach(function(b){ b.addEventListener('click',function(){ go(b.dataset.goto); }); });
  document.getElementById('name-form').addEventListener('submit',function(ev){
    ev.preventDefault();
    var name=document.getElementById('name-input').value;
    post('/api/kiosk/reveal',{name:name}).then(function(r){
      document.getElementById('greeting').textContent=r.greeting;
      document.getElementById('quote').textContent='"'+r.quote+'"';
      celebrate(r.celebration);
      go('result');
    }).catch(function(e){ document.getElementById('name-error').textContent=e.message; });
  });
  function render(state){
    ['front','back'].forEach(function(key){
      var s=state[key], fig=document.querySelector('.preview[data-side="'+s.side+'"]');
      var frame=fig.querySelector('.frame'), dl=fig.querySelector('.download'), retry=fig.querySelector('.retry');
      frame.textContent='';
      if(s.phase==='loading'){ frame.textContent='Designing '+s.side.toLowerCase()+'...'; }
      else if(s.phase==='succeeded'){ var img=document.createElement('img'); img.src=s.image.url; img.alt=state.design_id+' - '+s.side; frame.appendChild(img); }
      else if(s.phase==='empty'){ frame.textContent='No image was returned. Try again.'; }
      else if(s.phase==='failed'){ frame.textContent=s.error; }
      else { frame.textContent='Preview will appear here'; }
      dl.hidden=s.phase!=='succeeded';
      dl.href='/api/sessions/'+session+'/images/'+s.side.toLowerCase();
      if(s.image&&s.image.filename) dl.download=s.image.filename;
      retry.hidden=!(s.phase==='empty'||s.phase==='failed');
    });
    if(poll===null && !(state.front.phase!=='loading' && state.back.phase!=='loading')) watch();
  }
  function watch(){
    poll=setInterval(function(){
      fetch('/api/sessions/'+session+'/generations').then(function(r){ return r.json(); }).then(function(s){
        if(s.front.phase!=='loading' && s.back.phase!=='loading'){ clearInterval(poll); poll=null; }
        render(s);
      });
    },1500);
  }
  function ensureSession(){ return session ? Promise.resolve(session) : post('/api/sessions').then(function(r){ session=r.session_id; return session; }); }
  document.querySelectorAll('.design').forEach(function(b){
    b.addEventListener('click',function(){
      document.querySelectorAll('.design').forEach(function(x){ x.classList.toggle('selected',x===b); });
      ensureSession().then(function(id){ return post('/api/sessions/'+id+'/generations',{design_id:b.dataset.design}); }).then(render);
    });
  });
  document.querySelectorAll('.retry').forEach(function(b){
    b.addEventListener('click',function(){
      var side=b.closest('.preview').dataset.side.toLowerCase();
      post('/api/sessions/'+session+'/generations/'+side+'/retry').then(render);
    });
  });
})();
`
